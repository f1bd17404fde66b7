package views

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/proxy-console/pkg/navigation"
)

// Token lets the operator store the admin token sent to the proxy.
type Token struct {
	base
	cookie string
}

type tokenData struct {
	Action   string
	HasToken bool
}

var _ navigation.Submitter = (*Token)(nil)

// Render shows the token form.
func (v *Token) Render(w http.ResponseWriter, r *http.Request, page navigation.Page) error {
	return v.render(w, page, tokenData{
		Action:   page.Href(page.Active),
		HasToken: page.Token != "",
	}, nil)
}

// Submit stores the posted token in a cookie and redirects to the root
// route. An empty token clears the cookie.
func (v *Token) Submit(w http.ResponseWriter, r *http.Request, page navigation.Page) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	token := strings.TrimSpace(r.PostFormValue("token"))
	cookie := &http.Cookie{
		Name:     v.cookie,
		Value:    token,
		Path:     cookiePath(page),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	http.SetCookie(w, cookie)

	v.logger.Info("admin token updated", "cleared", token == "")

	root := page.Href(navigation.Route{Path: navigation.RootPath})
	http.Redirect(w, r, root, http.StatusSeeOther)
	return nil
}

func cookiePath(page navigation.Page) string {
	if page.BasePath == "" {
		return "/"
	}
	return page.BasePath + "/"
}
