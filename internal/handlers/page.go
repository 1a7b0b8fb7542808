package handlers

import (
	"net/http"
	"os"

	"github.com/Archemasachika7/Algorythm-auth/internal/logger"
)

// fallbackPage is served when the demo page asset is missing: the page-level
// equivalent of the controller aborting initialization. The user gets a
// manual-reload action instead of a silently broken form.
const fallbackPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>AlgoRhythm</title></head>
<body>
  <main role="alert">
    <h1>Something went wrong</h1>
    <p>The sign-in page failed to load. Please reload and try again.</p>
    <button onclick="location.reload()">Reload</button>
  </main>
</body>
</html>
`

// NewPageHandler serves the demo page from pagePath. A missing asset
// degrades to the fallback error panel rather than a broken page.
func NewPageHandler(pagePath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(pagePath); err != nil {
			logger.Log.Errorw("demo page asset missing, serving fallback", "path", pagePath, "err", err)
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(fallbackPage))
			return
		}
		http.ServeFile(w, r, pagePath)
	}
}
