package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lixi-remit/lixi-landing/pkg/ratelimit"
)

func normalizePath(controller *RESTController, relativePath string) string {
	var path string = controller.mountPoint

	if relativePath != "" {
		path = path + "/" + relativePath
	}

	if path[0] != '/' {
		path = "/" + path
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	return strings.ReplaceAll(path, "//", "/")
}

func (routerService *RouterService) keyForPathAndMethod(path, method string) string {
	return fmt.Sprintf("%s-%s", method, path)
}

func (controller *RESTController) bindHandlerToController(routerService *RouterService, path, method string) {
	key := routerService.keyForPathAndMethod(path, method)
	otherController, foundPrevious := routerService.handlerToControllerMap[key]

	if foundPrevious {
		panic(fmt.Sprintf("A handler is already registered for %s '%s' by controller '%s'", method, path, otherController.name))
	}

	routerService.handlerToControllerMap[key] = controller
}

func (routerService *RouterService) bindHandlerRateLimiter(path, method string, limiter ratelimit.RateLimiter) {
	if limiter == nil {
		return
	}

	key := routerService.keyForPathAndMethod(path, method)
	if _, foundPrevious := routerService.rateLimitOverrides[key]; foundPrevious {
		panic(fmt.Sprintf("A rate limiter is already registered for %s '%s'", method, path))
	}

	routerService.rateLimitOverrides[key] = limiter
}

func createHandler(handler HandlerFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		result := handler(c)

		if result == nil {
			c.JSON(http.StatusInternalServerError, InternalServerErrorResult("A handler returned an undefined result. This typically indicates a bug in a handler's implementation.").ToJSON())
			return
		}

		c.JSON(result.StatusCode, result.ToJSON())
	}
}

func createPageHandler(handler PageFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		page := handler(c)

		if page == nil || page.Template == "" {
			c.JSON(http.StatusInternalServerError, InternalServerErrorResult("A page handler returned no template.").ToJSON())
			return
		}

		c.HTML(page.StatusCode, page.Template, page.Data)
	}
}

func NewRESTController(name, mountPoint string, prepare func(*RouterService, *RESTController)) *RESTController {
	mountPoint = strings.ReplaceAll("/"+mountPoint, "//", "/")

	return &RESTController{
		name:       name,
		mountPoint: mountPoint,
		prepare:    prepare,
	}
}

func (routerService *RouterService) register(
	controller *RESTController,
	method string,
	limiter ratelimit.RateLimiter,
	path string,
	handlers []MiddlewareFunc,
) {
	controller.handlerCount++
	mountPoint := normalizePath(controller, path)
	controller.bindHandlerToController(routerService, mountPoint, method)
	routerService.bindHandlerRateLimiter(mountPoint, method, limiter)
	routerService.engine.Handle(method, mountPoint, handlers...)
	routerService.logger.Debug("Handler registered", "method", method, "path", mountPoint)
}

func (routerService *RouterService) AddPostHandler(
	controller *RESTController,
	limiter ratelimit.RateLimiter,
	path string,
	handler HandlerFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.register(controller, http.MethodPost, limiter, path, append(middlewares, createHandler(handler)))
}

func (routerService *RouterService) AddGetHandler(
	controller *RESTController,
	limiter ratelimit.RateLimiter,
	path string,
	handler HandlerFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.register(controller, http.MethodGet, limiter, path, append(middlewares, createHandler(handler)))
}

// AddPageHandler registers a GET route that renders an HTML template instead of
// the JSON envelope.
func (routerService *RouterService) AddPageHandler(
	controller *RESTController,
	limiter ratelimit.RateLimiter,
	path string,
	handler PageFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.register(controller, http.MethodGet, limiter, path, append(middlewares, createPageHandler(handler)))
}

// AddAssetHandler serves files from fsys under path/*filepath for GET and HEAD.
func (routerService *RouterService) AddAssetHandler(
	controller *RESTController,
	limiter ratelimit.RateLimiter,
	path string,
	fsys http.FileSystem,
) {
	route := strings.TrimSuffix(path, "/") + "/*filepath"
	serve := func(c *RequestContext) {
		name := c.Param("filepath")
		if name == "" || strings.HasSuffix(name, "/") {
			c.JSON(http.StatusNotFound, NotFoundResult("Asset not found").ToJSON())
			return
		}
		c.Header("Cache-Control", "public, max-age=3600")
		c.FileFromFS(name, fsys)
	}

	routerService.register(controller, http.MethodGet, limiter, route, []MiddlewareFunc{serve})
	routerService.register(controller, http.MethodHead, nil, route, []MiddlewareFunc{serve})
}
