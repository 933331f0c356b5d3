package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	productdomain "github.com/smallbiznis/catalog/internal/product/domain"
)

type createProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type updateProductRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, productdomain.ErrIncompleteData)
		return
	}
	if req.Name == nil || req.Price == nil {
		AbortWithError(c, productdomain.ErrIncompleteData)
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateRequest{
		Name:  *req.Name,
		Price: *req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListProducts(c *gin.Context) {
	resp, err := s.productSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) GetProductByID(c *gin.Context) {
	id, err := parseProductID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) UpdateProduct(c *gin.Context) {
	id, err := parseProductID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, productdomain.ErrIncompleteData)
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), id, productdomain.UpdateRequest{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) DeleteProduct(c *gin.Context) {
	id, err := parseProductID(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.productSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted successfully"})
}

// parseProductID maps non-numeric ids to the not-found path, matching the
// typed route converter of the original surface.
func parseProductID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, productdomain.ErrInvalidID
	}
	return id, nil
}
