package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srmist/campus-chat-go/internal/modules/admission"
	"github.com/srmist/campus-chat-go/web"
)

// pageData is rendered into both page templates.
type pageData struct {
	Institution string
	MaxLength   int
}

// registerPages mounts the landing page, the chat page, /exit and the
// static assets.
func (a *Application) registerPages(router *gin.Engine) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", http.FS(web.Static()))

	router.GET("/", a.page("index.html"))
	router.GET("/chatbot", a.page("chatbot.html"))
	router.GET("/exit", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
	return nil
}

func (a *Application) page(name string) gin.HandlerFunc {
	data := pageData{
		Institution: admission.InstitutionName,
		MaxLength:   a.cfg.Chat.MaxMessageLength,
	}
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, data)
	}
}
