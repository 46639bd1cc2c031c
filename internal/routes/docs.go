package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/luizavanter/guialmeidapersonal/internal/config"
)

const docsIndexHTML = `<!doctype html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Guilherme Almeida Personal — API de desenvolvimento</title>
  <style>
    body { margin: 0 auto; max-width: 56rem; padding: 2rem 1rem; font-family: Georgia, serif; color: #132019; }
    h1 { font-size: 1.8rem; }
    code { background: #0f172a; color: #e2e8f0; padding: 0.1rem 0.35rem; border-radius: 4px; }
    li { margin: 0.35rem 0; }
  </style>
</head>
<body>
  <h1>API de desenvolvimento</h1>
  <p>Servidor local em memória: os dados não sobrevivem a um restart.
     Todas as rotas ficam sob <code>/api/v1</code> e respondem o envelope
     <code>{data, meta, errors}</code>.</p>
  <ul>
    <li><code>POST /api/v1/auth/register</code>, <code>/login</code>, <code>/refresh</code>, <code>/logout</code>, <code>GET /auth/me</code></li>
    <li><code>/students</code>, <code>/appointments</code> (+ <code>POST /appointments/change-request</code>)</li>
    <li><code>/exercises</code>, <code>/workout-plans</code>, <code>/workout-logs</code></li>
    <li><code>/body-assessments</code>, <code>/evolution-photos</code>, <code>/goals</code></li>
    <li><code>/plans</code>, <code>/subscriptions</code>, <code>/payments</code></li>
    <li><code>/messages</code> (+ <code>PUT /messages/:id/read</code>), <code>/notifications</code></li>
  </ul>
  <p>Índice legível por máquina em <a href="/docs/routes.json"><code>/docs/routes.json</code></a>.</p>
</body>
</html>`

var docsRouteIndex = fiber.Map{
	"baseUrl": "/api/v1",
	"auth": []string{
		"POST /auth/register",
		"POST /auth/login",
		"POST /auth/refresh",
		"POST /auth/logout",
		"GET /auth/me",
	},
	"resources": []string{
		"students",
		"appointments",
		"exercises",
		"workout-plans",
		"workout-logs",
		"body-assessments",
		"evolution-photos",
		"goals",
		"plans",
		"subscriptions",
		"payments",
		"messages",
		"notifications",
	},
	"extras": []string{
		"POST /appointments/change-request",
		"PUT /messages/:id/read",
	},
}

// registerDocsRoutes exposes a minimal route reference in development; it is
// a no-op unless docs are explicitly enabled.
func registerDocsRoutes(app *fiber.App, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	app.Get("/docs", func(c *fiber.Ctx) error {
		c.Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'")
		c.Type("html", "utf-8")
		return c.SendString(docsIndexHTML)
	})
	app.Get("/docs/routes.json", func(c *fiber.Ctx) error {
		return c.JSON(docsRouteIndex)
	})
	return nil
}
