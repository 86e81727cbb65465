package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

// accountFormData fills the credential form shown inside the helpdesk's
// admin iframe.
type accountFormData struct {
	Name      string
	Login     string
	Password  string
	Location  string
	ReturnURL string
	Warning   string
}

// handoffData fills the auto-submitting form that posts the finished
// account back to the platform.
type handoffData struct {
	ReturnURL string
	Name      string
	Metadata  string
}

var accountFormTemplate = template.Must(template.New("account_form").Parse(`<html>
<body>
  {{if .Warning}}<p>{{.Warning}}</p>{{end}}
  <form method="post" action="./admin_ui_2">
    <label>Name: <input type="text" name="name" value="{{.Name}}"></label><br>
    <label>Login: <input type="text" name="login" value="{{.Login}}"></label><br>
    <label>Password: <input type="password" name="password" value="{{.Password}}"></label><br>
    <label>Wordpress location: <input type="text" name="wordpress_location" value="{{.Location}}"></label><br>
    <input type="hidden" name="return_url" value="{{.ReturnURL}}">
    <input type="submit" value="Connect">
  </form>
</body>
</html>`))

var handoffTemplate = template.Must(template.New("handoff").Parse(`<html>
<body>
  <form id="finish" method="post" action="{{.ReturnURL}}">
    <input type="hidden" name="name" value="{{.Name}}">
    <input type="hidden" name="metadata" value="{{.Metadata}}">
  </form>
  <script type="text/javascript">
    document.getElementById("finish").submit();
  </script>
</body>
</html>`))

func renderAccountForm(c echo.Context, data accountFormData) error {
	var buf bytes.Buffer
	if err := accountFormTemplate.Execute(&buf, data); err != nil {
		return err
	}
	return c.HTML(http.StatusOK, buf.String())
}

func renderHandoff(c echo.Context, data handoffData) error {
	var buf bytes.Buffer
	if err := handoffTemplate.Execute(&buf, data); err != nil {
		return err
	}
	return c.HTML(http.StatusOK, buf.String())
}
