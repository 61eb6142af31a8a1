package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// List lists the direct children of a directory, the root when omitted
func (h *Handlers) List(c *gin.Context) {
	dir := c.Param("directory")

	names, err := h.fs.List(c.Request.Context(), h.fs.Resolve(dir))
	if err != nil {
		h.fail(c, "list", err)
		return
	}

	c.JSON(http.StatusOK, names)
}

// CreateDirectory creates a single directory below the root
func (h *Handlers) CreateDirectory(c *gin.Context) {
	dir := c.Param("directory")

	if err := h.fs.CreateDirectory(c.Request.Context(), h.fs.Join(dir)); err != nil {
		h.fail(c, "create_dir", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Directory '" + dir + "' created successfully",
	})
}

// CreateFile writes a file, replacing any existing content
func (h *Handlers) CreateFile(c *gin.Context) {
	name := c.Param("fileName")

	data, err := bindData(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.fs.CreateFile(c.Request.Context(), h.fs.Resolve(name), data); err != nil {
		h.fail(c, "create_file", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File '" + name + "' created successfully",
	})
}

// ReadFile returns the whole content of a file
func (h *Handlers) ReadFile(c *gin.Context) {
	name := c.Param("fileName")

	content, err := h.fs.ReadFile(c.Request.Context(), h.fs.Resolve(name))
	if err != nil {
		h.fail(c, "read_file", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": content})
}

// UpdateFile overwrites a file
func (h *Handlers) UpdateFile(c *gin.Context) {
	name := c.Param("fileName")

	data, err := bindData(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.fs.UpdateFile(c.Request.Context(), h.fs.Resolve(name), data); err != nil {
		h.fail(c, "update_file", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File '" + name + "' updated successfully",
	})
}

// Delete removes a file, or a directory with everything below it
func (h *Handlers) Delete(c *gin.Context) {
	target := c.Param("target")

	if err := h.fs.Delete(c.Request.Context(), h.fs.Resolve(target)); err != nil {
		h.fail(c, "delete", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File or directory '" + target + "' deleted successfully",
	})
}

// Search returns the absolute paths of files below the root whose name
// contains the search term
func (h *Handlers) Search(c *gin.Context) {
	term := c.Param("searchTerm")

	results, err := h.fs.Search(c.Request.Context(), term)
	if err != nil {
		h.fail(c, "search", err)
		return
	}
	h.metrics.TrackSearch(len(results))

	c.JSON(http.StatusOK, results)
}

// Register mounts every route on r
func (h *Handlers) Register(r gin.IRoutes) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	r.GET("/list", h.List)
	r.GET("/list/:directory", h.List)
	r.GET("/create-dir/:directory", h.CreateDirectory)
	r.GET("/create-file/:fileName", h.CreateFile)
	r.GET("/read-file/:fileName", h.ReadFile)
	r.PUT("/update-file/:fileName", h.UpdateFile)
	r.GET("/delete/:target", h.Delete)
	r.GET("/search/:searchTerm", h.Search)
}
