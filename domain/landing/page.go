package landing

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/lixi-remit/lixi-landing/domain/waitlist"
	"github.com/lixi-remit/lixi-landing/pkg/constants"
)

const indexTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed assets
var assetFS embed.FS

var valueCards = []string{"fast", "lowCost", "simple", "secure", "stable", "focused"}

type pageData struct {
	Lang         string
	OtherLang    string
	ToggleLabel  string
	MessengerURL string
	ValueCards   []string
	Steps        []int
	Buckets      []string
	Year         int
}

func newPageData(lang string, now time.Time) pageData {
	other := OtherLanguage(lang)
	return pageData{
		Lang:         lang,
		OtherLang:    other,
		ToggleLabel:  strings.ToUpper(other),
		MessengerURL: constants.MessengerURL,
		ValueCards:   valueCards,
		Steps:        []int{1, 2, 3},
		Buckets:      waitlist.MonthlyAmountBuckets,
		Year:         now.Year(),
	}
}

// ParseTemplates loads the embedded page templates with the translation helper.
func ParseTemplates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{"t": T}).
		ParseFS(templateFS, "templates/*.html")
}

// Assets exposes the embedded static files rooted at the assets directory.
func Assets() http.FileSystem {
	sub, err := fs.Sub(assetFS, "assets")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
