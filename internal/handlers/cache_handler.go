package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/maramilod/alx-backend/internal/cache"
	"github.com/maramilod/alx-backend/internal/pagination"

	"github.com/gin-gonic/gin"
)

// CacheHandler serves the named caches of a Registry.
type CacheHandler struct {
	caches *cache.Registry[string, string]
}

func NewCacheHandler(caches *cache.Registry[string, string]) *CacheHandler {
	return &CacheHandler{caches: caches}
}

// CacheInfo describes one cache in listings.
type CacheInfo struct {
	Name     string       `json:"name"`
	Policy   cache.Policy `json:"policy"`
	Capacity int          `json:"capacity"`
	Size     int          `json:"size"`
	Stats    cache.Stats  `json:"stats"`

	// NextVictim is the key the next new key would evict, null while there is room.
	NextVictim *string `json:"next_victim"`
}

// PutItemRequest is the body of PUT /api/caches/:name/items/:key.
// A missing or null value is accepted and ignored.
type PutItemRequest struct {
	Value *string `json:"value"`
}

// ItemResponse carries a single entry.
type ItemResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// lookup resolves the :name path parameter or writes a 404.
func (h *CacheHandler) lookup(c *gin.Context) (*cache.BoundedCache[string, string], bool) {
	bc, err := h.caches.Lookup(c.Param("name"))
	if errors.Is(err, cache.ErrUnknownCache) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cache not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cache"})
		return nil, false
	}
	return bc, true
}

func describe(name string, bc *cache.BoundedCache[string, string]) CacheInfo {
	info := CacheInfo{
		Name:     name,
		Policy:   bc.Policy(),
		Capacity: bc.Capacity(),
		Size:     bc.Len(),
		Stats:    bc.Stats(),
	}
	if key, ok := bc.NextVictim(); ok {
		info.NextVictim = &key
	}
	return info
}

// ListCaches handles GET /api/caches
func (h *CacheHandler) ListCaches(c *gin.Context) {
	names := h.caches.Names()
	resp := make([]CacheInfo, 0, len(names))
	for _, name := range names {
		bc, err := h.caches.Lookup(name)
		if err != nil {
			continue
		}
		resp = append(resp, describe(name, bc))
	}
	c.JSON(http.StatusOK, gin.H{
		"caches": resp,
		"count":  len(resp),
	})
}

// GetCache handles GET /api/caches/:name
func (h *CacheHandler) GetCache(c *gin.Context) {
	bc, ok := h.lookup(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, describe(c.Param("name"), bc))
}

/*
ListItems handles GET /api/caches/:name/items
Returns the keys in arrival order, paginated with page (default 1) and
page_size (default 10).
*/
func (h *CacheHandler) ListItems(c *gin.Context) {
	bc, ok := h.lookup(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be an integer"})
		return
	}

	result, err := pagination.Paginate(bc.Keys(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetItem handles GET /api/caches/:name/items/:key
func (h *CacheHandler) GetItem(c *gin.Context) {
	bc, ok := h.lookup(c)
	if !ok {
		return
	}
	key := c.Param("key")
	value, found := bc.Get(key)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Key not found"})
		return
	}
	c.JSON(http.StatusOK, ItemResponse{Key: key, Value: value})
}

// PutItem handles PUT /api/caches/:name/items/:key
func (h *CacheHandler) PutItem(c *gin.Context) {
	bc, ok := h.lookup(c)
	if !ok {
		return
	}

	var req PutItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	key := c.Param("key")
	if req.Value == nil {
		c.JSON(http.StatusOK, gin.H{
			"key":    key,
			"stored": false,
			"size":   bc.Len(),
		})
		return
	}

	bc.Put(key, *req.Value)
	c.JSON(http.StatusOK, gin.H{
		"key":    key,
		"value":  *req.Value,
		"stored": true,
		"size":   bc.Len(),
	})
}

// DeleteItem handles DELETE /api/caches/:name/items/:key
func (h *CacheHandler) DeleteItem(c *gin.Context) {
	bc, ok := h.lookup(c)
	if !ok {
		return
	}
	bc.Delete(c.Param("key"))
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
