package restapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"enterl2_explorer/internal/app/port"
	"enterl2_explorer/internal/app/search"
	"enterl2_explorer/internal/domain/entity"
	"enterl2_explorer/internal/infrastructure/configloader"

	"github.com/gin-gonic/gin"
)

// ExplorerHandler renders the explorer pages.
type ExplorerHandler struct {
	service port.ExplorerService
	cfg     *configloader.Config
	logger  port.Logger
}

// NewExplorerHandler creates a new instance of ExplorerHandler.
func NewExplorerHandler(s port.ExplorerService, cfg *configloader.Config, l port.Logger) *ExplorerHandler {
	if cfg == nil {
		cfg = configloader.Default()
	}
	if l == nil {
		l = port.NopLogger{}
	}
	return &ExplorerHandler{service: s, cfg: cfg, logger: l}
}

// withTimeout bounds the upstream work of one page.
func (h *ExplorerHandler) withTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.cfg.Pages.RequestTimeout())
}

// view fills the keys every template reads.
func view(title string, data gin.H) gin.H {
	v := gin.H{"Title": title, "Query": "", "Error": ""}
	for k, val := range data {
		v[k] = val
	}
	return v
}

// renderLookup picks the template from the lookup outcome: found, not found (404) or failed (502).
func (h *ExplorerHandler) renderLookup(c *gin.Context, status entity.LookupStatus, lookupErr error, tmpl, kind, id string, data gin.H) {
	switch status {
	case entity.LookupFound:
		c.HTML(http.StatusOK, tmpl, view(kind+" "+id, data))
	case entity.LookupFailed:
		h.logger.Error("Lookup failed", "kind", kind, "id", id, "error", lookupErr)
		if lookupErr != nil {
			_ = c.Error(lookupErr)
		}
		c.HTML(http.StatusBadGateway, "error.html", view(kind, gin.H{"Kind": kind, "ID": id}))
	default:
		c.HTML(http.StatusNotFound, "not_found.html", view(kind+" not found", gin.H{"Kind": kind, "ID": id}))
	}
}

// Home renders the landing page.
func (h *ExplorerHandler) Home(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	c.HTML(http.StatusOK, "home.html", view("", gin.H{
		"Page":        h.service.HomePage(ctx),
		"Suggestions": search.Suggestions(),
	}))
}

// Search redirects to the page of the classified query, or re-renders home with the reason.
func (h *ExplorerHandler) Search(c *gin.Context) {
	query := c.Query("q")
	target, err := search.Resolve(query)
	if err == nil {
		c.Redirect(http.StatusFound, target.Path)
		return
	}

	h.logger.Debug("Search query rejected", "query", query, "error", err)
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	c.HTML(http.StatusBadRequest, "home.html", view("Search", gin.H{
		"Page":        h.service.HomePage(ctx),
		"Suggestions": search.Suggestions(),
		"Query":       query,
		"Error":       err.Error(),
	}))
}

// Transaction renders /tx/:hash.
func (h *ExplorerHandler) Transaction(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	hash := c.Param("hash")
	page := h.service.TransactionPage(ctx, hash)
	h.renderLookup(c, page.Transaction.Status, page.Transaction.Err, "transaction.html", "Transaction", hash, gin.H{"Page": page})
}

// Block renders /block/:id.
func (h *ExplorerHandler) Block(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	id := c.Param("id")
	page := h.service.BlockPage(ctx, id)
	h.renderLookup(c, page.Block.Status, page.Block.Err, "block.html", "Block", id, gin.H{"Page": page})
}

// Address renders /address/:address?page=N.
func (h *ExplorerHandler) Address(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	pageNumber, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || pageNumber < 1 {
		pageNumber = 1
	}

	address := c.Param("address")
	page := h.service.AddressPage(ctx, address, pageNumber)
	h.renderLookup(c, page.Address.Status, page.Address.Err, "address.html", "Address", address, gin.H{"Page": page})
}

// Batch renders /batch/:id.
func (h *ExplorerHandler) Batch(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	id := c.Param("id")
	page := h.service.BatchPage(ctx, id)
	h.renderLookup(c, page.Batch.Status, page.Batch.Err, "batch.html", "Batch", id, gin.H{"Page": page})
}

// Batches renders the latest batches.
func (h *ExplorerHandler) Batches(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	c.HTML(http.StatusOK, "batches.html", view("Batches", gin.H{"Page": h.service.BatchesPage(ctx)}))
}

// Name renders /name/:name.
func (h *ExplorerHandler) Name(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	name := c.Param("name")
	page := h.service.NamePage(ctx, name)
	h.renderLookup(c, page.Info.Status, page.Info.Err, "name.html", "Name", name, gin.H{"Page": page})
}

// NotFound renders the 404 page for unknown routes.
func (h *ExplorerHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", view("Not found", gin.H{"Kind": "Page", "ID": c.Request.URL.Path}))
}

// APIClassifyResponse is the answer of GET /api/v1/classify.
type APIClassifyResponse struct {
	search.Target
	Error string `json:"error,omitempty"`
}

// ClassifyHandler classifies ?q= without navigating.
func (h *ExplorerHandler) ClassifyHandler(c *gin.Context) {
	target, err := search.Resolve(c.Query("q"))
	resp := APIClassifyResponse{Target: target}
	if err != nil {
		resp.Error = err.Error()
	}
	if errors.Is(err, search.ErrEmptyQuery) {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchHandler proxies ?q= to the backing search service.
func (h *ExplorerHandler) SearchHandler(c *gin.Context) {
	ctx, cancel := h.withTimeout(c)
	defer cancel()

	result := h.service.Search(ctx, c.Query("q"))
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no result"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Health answers liveness probes. It never calls upstream.
func (h *ExplorerHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
