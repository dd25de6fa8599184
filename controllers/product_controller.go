package controllers

import (
	"errors"
	"strconv"

	"github.com/OhadLibai/Timely-sub002/pkg/resp"
	"github.com/OhadLibai/Timely-sub002/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductController struct{ Repo *repository.ProductRepository }

func NewProductController(repo *repository.ProductRepository) *ProductController {
	return &ProductController{Repo: repo}
}

// GET /api/products?category=&search=&page=&limit=
func (pc *ProductController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "24"))
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 24
	}
	categoryID, _ := strconv.Atoi(c.Query("category"))

	products, total, err := pc.Repo.List(repository.ProductFilter{
		CategoryID: uint(categoryID),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": products, "total": total, "page": page, "limit": limit})
}

// GET /api/products/categories
func (pc *ProductController) Categories(c *gin.Context) {
	categories, err := pc.Repo.ListCategories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": categories})
}

// GET /api/products/:id
func (pc *ProductController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid product id")
		return
	}

	p, err := pc.Repo.GetActive(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "product not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}
