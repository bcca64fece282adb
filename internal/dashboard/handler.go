package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Handler 持有service实例，把HTTP层的编解码与业务逻辑隔开。
type Handler struct {
	service *Service
}

// NewHandler 创建一个新的处理器实例。
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// parseID 从路径参数中解析指标ID。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id必须是一个正整数"})
		return 0, false
	}
	return uint(id), true
}

// ListItems 处理 GET /api/dashboard
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取指标列表失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemByID 处理 GET /api/dashboard/:id
func (h *Handler) GetItemByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到ID为 %d 的指标", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "数据库查询失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem 处理 POST /api/dashboard
// 成功时返回201，响应头携带新资源的Location。
func (h *Handler) CreateItem(c *gin.Context) {
	var payload DashboardItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}

	created, err := h.service.CreateItem(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "创建指标失败: " + err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/api/dashboard/%d", created.ID))
	c.JSON(http.StatusCreated, created)
}

// UpdateItem 处理 PUT /api/dashboard/:id
// 请求体的Id必须与路径一致，整行覆盖，成功时无响应体。
func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload DashboardItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}

	if payload.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体中的Id与路径不一致"})
		return
	}

	if err := h.service.ReplaceItem(payload); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到ID为 %d 的指标", id)})
		case errors.Is(err, ErrConflict):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "指标正在被并发修改: " + err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新指标失败: " + err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteItem 处理 DELETE /api/dashboard/:id
func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("找不到ID为 %d 的指标", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除指标失败: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
