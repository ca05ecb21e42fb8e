package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JPVargas2025/storefront/internal/api/metrics"
	"github.com/JPVargas2025/storefront/internal/core/domain"
	"github.com/JPVargas2025/storefront/internal/core/ports"
)

type ProductHandler struct {
	service ports.CatalogService
}

func NewProductHandler(service ports.CatalogService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /v1/products. With ?q= it returns the products whose name
// contains q.
//
// @Summary      List or search products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Name substring"
// @Success      200  {object}  productsResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		products []domain.Product
		err      error
	)
	if c.QueryParams().Has("q") {
		q := c.QueryParam("q")
		if q == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "q must not be empty")
		}
		products, err = h.service.FindProducts(ctx, q)
	} else {
		products, err = h.service.ListProducts(ctx)
	}
	if err != nil {
		return err
	}

	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(http.StatusOK, productsResponse{Products: products, Count: len(products)})
}

// Create handles POST /v1/products.
//
// @Summary      Add a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req addProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.service.AddProduct(c.Request().Context(), ports.AddProductInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		return err
	}

	metrics.ProductsAddedTotal.Inc()
	return c.JSON(http.StatusCreated, p)
}

// Categories handles GET /v1/products/categories.
//
// @Summary      Suggested product categories
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  categoriesResponse
// @Router       /v1/products/categories [get]
func (h *ProductHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{Categories: domain.Categories})
}
