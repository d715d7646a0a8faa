package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"servija-api/internal/application/ports"
	"servija-api/internal/interface/api/rest/dto/category"
	"servija-api/internal/interface/api/rest/validator"
)

type CategoryController struct {
	categoryService ports.CategoryService
	logger          *zap.Logger
}

func NewCategoryController(
	r *gin.Engine,
	categoryService ports.CategoryService,
	logger *zap.Logger,
	guard Guard,
) *CategoryController {
	cc := &CategoryController{
		categoryService: categoryService,
		logger:          logger,
	}

	r.GET(RouteCategories, cc.GetCategoriesHandler)
	r.POST(RouteCategories, guard.Admin(cc.CreateCategoryHandler)...)
	r.PATCH(RouteCategory, guard.Admin(cc.UpdateCategoryHandler)...)
	r.DELETE(RouteCategory, guard.Admin(cc.DeleteCategoryHandler)...)

	return cc
}

func (cc *CategoryController) GetCategoriesHandler(c *gin.Context) {
	active, err := validator.QueryBool(c.Query("ativo"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ativo " + err.Error()})
		return
	}

	cs, err := cc.categoryService.FindCategories(c.Request.Context(), active)
	if err != nil {
		respondError(c, cc.logger, "FindCategories()", err, "failed to get categories")
		return
	}

	c.JSON(http.StatusOK, category.ResponseItems{
		Items: category.ToResponseCategories(cs),
	})
}

func (cc *CategoryController) CreateCategoryHandler(c *gin.Context) {
	var req category.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	created, err := cc.categoryService.CreateCategory(c.Request.Context(), category.ToDomainPatch(req))
	if err != nil {
		respondError(c, cc.logger, "CreateCategory()", err, "failed to create a category")
		return
	}

	c.JSON(http.StatusCreated, category.ToResponseCategory(*created))
}

func (cc *CategoryController) UpdateCategoryHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("category_id"))
	if !ok {
		invalidParam(c, "category_id")
		return
	}

	var req category.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	updated, err := cc.categoryService.UpdateCategory(c.Request.Context(), id, category.ToDomainPatch(req))
	if err != nil {
		respondError(c, cc.logger, "UpdateCategory()", err, "failed to update a category")
		return
	}

	c.JSON(http.StatusOK, category.ToResponseCategory(*updated))
}

func (cc *CategoryController) DeleteCategoryHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("category_id"))
	if !ok {
		invalidParam(c, "category_id")
		return
	}

	if err := cc.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, cc.logger, "DeleteCategory()", err, "failed to delete a category")
		return
	}

	c.Status(http.StatusNoContent)
}
