package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"catalog/internal/flash"
	"catalog/internal/models"
	"catalog/internal/store"
)

const imageField = "image"

// ProductStore is what the handlers need from the persistence layer.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, fields bson.M) error
	GetByID(ctx context.Context, id string) (models.Product, error)
	UpdateByID(ctx context.Context, id string, fields bson.M) error
	DeleteByID(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type ProductHandler struct {
	store     ProductStore
	log       *zap.Logger
	publicDir string
}

func NewProductHandler(store ProductStore, log *zap.Logger, publicDir string) *ProductHandler {
	return &ProductHandler{store: store, log: log, publicDir: publicDir}
}

type productForm struct {
	Name        string  `form:"name"`
	Description string  `form:"description"`
	Price       float64 `form:"price"`
	Qty         int     `form:"qty"`
}

// GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.store.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Products": products,
		"Messages": flash.Take(c),
	})
}

// GET /products/add
func (h *ProductHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add.tmpl", nil)
}

// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	image, err := saveUploadedImage(c, imageField, h.publicDir)
	if err != nil {
		h.fail(c, err)
		return
	}
	fields := bson.M{
		"name":        form.Name,
		"description": form.Description,
		"price":       form.Price,
		"qty":         form.Qty,
	}
	if image != "" {
		fields[imageField] = image
	}
	if err := h.store.Create(c.Request.Context(), fields); err != nil {
		h.fail(c, err)
		return
	}
	flash.Set(c, "product added successfully")
	c.Redirect(http.StatusFound, "/products")
}

// GET /products/:id
func (h *ProductHandler) EditForm(c *gin.Context) {
	product, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit.tmpl", gin.H{"Product": product})
}

// PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	image, err := saveUploadedImage(c, imageField, h.publicDir)
	if err != nil {
		h.fail(c, err)
		return
	}
	fields := bson.M{
		"name":        form.Name,
		"description": form.Description,
		"price":       form.Price,
		"qty":         form.Qty,
	}
	// image stays unchanged unless a new file came with the request
	if image != "" {
		fields[imageField] = image
	}
	if err := h.store.UpdateByID(c.Request.Context(), c.Param("id"), fields); err != nil {
		h.fail(c, err)
		return
	}
	flash.Set(c, "Data updated successfully")
	c.Redirect(http.StatusFound, "/products")
}

// DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	flash.Set(c, "Data deleted successfully")
	c.Redirect(http.StatusFound, "/products")
}

// GET /health
func (h *ProductHandler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "db": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// fail logs the error and always answers; every code path produces exactly
// one response.
func (h *ProductHandler) fail(c *gin.Context, err error) {
	h.log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	switch {
	case errors.Is(err, store.ErrInvalidID):
		c.String(http.StatusBadRequest, "invalid product id")
	case errors.Is(err, store.ErrNotFound):
		c.String(http.StatusNotFound, "Not found")
	default:
		c.String(http.StatusInternalServerError, err.Error())
	}
}
