package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	productdomain "github.com/smallbiznis/catalog/internal/product/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

func uiTemplates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"price": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).ParseFS(templatesFS, "templates/*.html"))
}

func (s *Server) registerUIRoutes() {
	s.engine.SetHTMLTemplate(uiTemplates())

	s.engine.GET("/", s.Index)
	s.engine.POST("/add", s.AddProduct)
	s.engine.GET("/edit/:id", s.EditProductForm)
	s.engine.POST("/edit/:id", s.EditProduct)
	s.engine.POST("/delete/:id", s.DeleteProductForm)
}

func (s *Server) Index(c *gin.Context) {
	items, err := s.productSvc.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	settings := s.uiSettings.Get()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":    settings.Title,
		"Currency": settings.Currency,
		"Products": items,
	})
}

// AddProduct keeps the lenient form contract: missing or malformed input is
// dropped without feedback and the client is always sent back to the list.
func (s *Server) AddProduct(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	rawPrice := strings.TrimSpace(c.PostForm("price"))

	if name != "" && rawPrice != "" {
		if value, err := parseFormPrice(rawPrice); err == nil {
			_, _ = s.productSvc.Create(c.Request.Context(), productdomain.CreateRequest{
				Name:  name,
				Price: value,
			})
		}
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) EditProductForm(c *gin.Context) {
	id, err := parseProductID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	item, err := s.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	settings := s.uiSettings.Get()
	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Title":   settings.Title,
		"Product": item,
	})
}

// EditProduct replaces name and price wholesale; the form always submits both.
func (s *Server) EditProduct(c *gin.Context) {
	id, err := parseProductID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	rawPrice := strings.TrimSpace(c.PostForm("price"))

	if name != "" && rawPrice != "" {
		if value, err := parseFormPrice(rawPrice); err == nil {
			_, _ = s.productSvc.Update(c.Request.Context(), id, productdomain.UpdateRequest{
				Name:  &name,
				Price: &value,
			})
		}
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) DeleteProductForm(c *gin.Context) {
	if id, err := parseProductID(c.Param("id")); err == nil {
		_ = s.productSvc.Delete(c.Request.Context(), id)
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// parseFormPrice accepts a comma as decimal separator.
func parseFormPrice(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
}
