package retrieval

import "strings"

// ArticleURL returns the deep-link for an attraction by case-insensitive
// keyword containment, first match in source order. It always returns a URL;
// unknown attractions get the default.
func (r *Retriever) ArticleURL(attraction string) string {
	needle := strings.ToLower(strings.TrimSpace(attraction))
	if needle != "" {
		for _, a := range r.store.Articles {
			if strings.Contains(needle, strings.ToLower(a.Keyword)) {
				return a.URL
			}
		}
	}
	return r.store.DefaultArticleURL
}
