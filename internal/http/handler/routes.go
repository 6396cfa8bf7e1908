package handler

import (
	"bytes"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"customerlist/internal/apiclient"
	"customerlist/internal/listview"
	"customerlist/internal/service"
)

// ReadyFunc reports whether upstream dependencies are usable.
type ReadyFunc func(ctx context.Context) error

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, svc service.CustomerService, ready ReadyFunc, loc *time.Location) {
	app.Get("/openapi.yaml", OpenAPISpec())
	app.Get("/docs", DocsPage())

	app.Get("/health", HealthCheck(ready))
	app.Get("/healthz", LivenessProbe())

	app.Get(apiclient.CustomersPath, ListCustomers(svc))
	app.Get("/", CustomersPage(svc, loc))
}

// HealthCheck reports 503 while the upstream configuration is unusable.
func HealthCheck(ready ReadyFunc) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if ready != nil {
			if err := ready(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListCustomers godoc
// @Summary      List customers
// @Description  Returns up to 10 customers from the shop, in the shop's order.
// @Tags         customers
// @Produce      json
// @Success      200  {array}   model.Customer
// @Failure      500  {object}  handler.listErrorPayload
// @Router       /api/customers [get]
func ListCustomers(svc service.CustomerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		customers, err := svc.List(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(listErrorPayload{
				Error: service.ErrUpstreamFailed.Error(),
			})
		}
		return c.JSON(customers)
	}
}

// CustomersPage renders the customer table as HTML. The sort query parameter
// ("desc" or "asc") is reached by replaying toggles on a freshly loaded view.
func CustomersPage(svc service.CustomerService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode, err := listview.ParseSortMode(c.Query("sort"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_SORT", "invalid sort mode")
		}

		ctx := c.UserContext()
		view := listview.NewView(listview.FetcherFunc(svc.List))
		state := view.Load(ctx)
		for state.Load.Status == listview.Ready && state.Sort != mode {
			state = view.Toggle(ctx)
		}

		var buf bytes.Buffer
		if err := listview.RenderHTML(&buf, state, loc, toggleHref(state.Sort)); err != nil {
			return err
		}

		status := fiber.StatusOK
		if state.Load.Status == listview.Failed {
			status = fiber.StatusInternalServerError
		}
		c.Type("html", "utf-8")
		return c.Status(status).Send(buf.Bytes())
	}
}

func toggleHref(current listview.SortMode) string {
	next := current.Next()
	if next == listview.Unsorted {
		return "/"
	}
	return "/?sort=" + next.String()
}

// OpenAPISpec serves the static OpenAPI document.
func OpenAPISpec() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	}
}

// DocsPage serves a Swagger UI bound to /openapi.yaml.
func DocsPage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	}
}
