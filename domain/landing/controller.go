package landing

import (
	"html/template"
	"net/http"
	"time"

	"github.com/lixi-remit/lixi-landing/config/router"
	"github.com/lixi-remit/lixi-landing/internal/log"
	"github.com/lixi-remit/lixi-landing/pkg/constants"
)

const languageCookieMaxAge = 365 * 24 * 60 * 60

func NewLandingController(logger *log.Logger) *router.RESTController {
	tmpl := template.Must(ParseTemplates())

	return router.NewRESTController(
		"LandingController",
		"/",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.SetHTMLTemplate(tmpl)

			rs.AddPageHandler(c, nil, "", landingPageHandler(time.Now))
			rs.AddGetHandler(c, nil, "api/i18n/:lang", translationsHandler())
			rs.AddAssetHandler(c, nil, "assets", Assets())

			logger.Debug("Landing routes ready", "languages", SupportedLanguages)
		},
	)
}

func landingPageHandler(now func() time.Time) router.PageFunction {
	return func(ctx *router.RequestContext) *router.PageResult {
		query := ctx.Query("lang")
		cookie, _ := ctx.Cookie(constants.LanguageCookieName)
		lang := ResolveLanguage(query, cookie, ctx.GetHeader("Accept-Language"))

		if query != "" && IsSupported(query) {
			ctx.SetSameSite(http.SameSiteLaxMode)
			ctx.SetCookie(constants.LanguageCookieName, lang, languageCookieMaxAge, "/", "", false, false)
		}

		ctx.Header("Content-Language", lang)
		ctx.Header("Vary", "Accept-Language, Cookie")
		return router.HTMLPage(indexTemplate, newPageData(lang, now()))
	}
}

func translationsHandler() router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		lang := normalizeLanguage(ctx.Param("lang"))

		table, ok := Translations(lang)
		if !ok {
			return router.NotFoundResult("Unsupported language")
		}

		return router.OKResult(map[string]any{
			"language":     lang,
			"translations": table,
		}, "")
	}
}
