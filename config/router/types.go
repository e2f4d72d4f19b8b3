package router

import (
	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

// ServiceResult is rendered as {"success": bool, "message"?, "errors"?} with map
// data merged into the top level and any other data placed under "data".
type ServiceResult struct {
	StatusCode int
	Data       any
	Message    string
	Errors     any
}

// PageResult names an HTML template registered with SetHTMLTemplate.
type PageResult struct {
	StatusCode int
	Template   string
	Data       any
}

type RateLimitResponse struct {
	Limit      int    `json:"limit"`
	Window     string `json:"window"`
	RetryAfter string `json:"retry_after"`
}

type HandlerFunction func(*RequestContext) *ServiceResult

type PageFunction func(*RequestContext) *PageResult

type RESTController struct {
	name         string
	mountPoint   string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

func (result *ServiceResult) ToJSON() gin.H {
	body := gin.H{"success": result.IsSuccess()}

	if result.Message != "" {
		body["message"] = result.Message
	}
	if result.Errors != nil {
		body["errors"] = result.Errors
	}

	switch data := result.Data.(type) {
	case nil:
	case gin.H:
		mergeInto(body, data)
	case map[string]any:
		mergeInto(body, data)
	default:
		body["data"] = data
	}

	return body
}

func mergeInto(body gin.H, data map[string]any) {
	for k, v := range data {
		if k == "success" {
			continue
		}
		body[k] = v
	}
}

func (result *ServiceResult) IsSuccess() bool {
	return result.StatusCode >= 200 && result.StatusCode < 300
}
