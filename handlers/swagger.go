package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>legaldocs — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the generation endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "legaldocs", "version": "v0.1.0" },
  "paths": {
    "/api/legaldocs/generate": {
      "post": {
        "summary": "Generate a legal document from a description and Q&A answers",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["userId","answers","userInput","country"],"properties":{"userId":{"type":"string"},"answers":{"type":"array","items":{"type":"object","properties":{"question":{"type":"string"},"answer":{"type":"string"}}}},"userInput":{"type":"string"},"country":{"type":"string"}}}}}},
        "responses": { "200": { "description": "pdfUrl, or preview/pdf/docx base64 payloads depending on deployment" }, "400": { "description": "missing fields, input too long, or implausibly short generation" }, "500": { "description": "provider or upload failure" }, "503": { "description": "document database unavailable" } }
      }
    },
    "/api/legaldocs/questions": {
      "post": { "summary": "Clarifying questions for the drafting wizard", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["userInput","country"],"properties":{"userInput":{"type":"string"},"country":{"type":"string"}}}}}}, "responses": { "200": { "description": "questions list" }, "400": { "description": "missing fields" } } }
    },
    "/api/legaldocs/user/{userId}": {
      "get": { "summary": "Generation history for a user", "responses": { "200": { "description": "documents list" }, "503": { "description": "document database unavailable" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
