// Package docs registers the OpenAPI description of the contact form API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/forms": {
            "post": {
                "description": "Creates a new form instance with empty fields and returns its initial view.",
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Mount a contact form",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/forms/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Get a contact form",
                "parameters": [{"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "description": "Discards the form instance and its submitted values.",
                "tags": ["contact"],
                "summary": "Unmount a contact form",
                "parameters": [{"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/forms/{id}/fields/{field}": {
            "put": {
                "description": "Stores the new text of one field and re-validates that field only.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Change a field",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "firstName, lastName, email or message", "name": "field", "in": "path", "required": true},
                    {"description": "New value", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.ChangeFieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/forms/{id}/submit": {
            "post": {
                "description": "Validates every field. A rejected submit is not an error: the view carries the field errors and status \"rejected\".",
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit a contact form",
                "parameters": [{"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/forms/{id}/reset": {
            "post": {
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Reset a contact form",
                "parameters": [{"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "v1.ChangeFieldRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Contact Form API",
	Description:      "Server-side contact form: mount, change fields, submit.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
