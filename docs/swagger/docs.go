// Package swagger holds the OpenAPI document served at /swagger/doc.json.
// Regenerate with: swag init -g cmd/api/main.go -o docs/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json", "text/plain"],
                "tags": ["meta"],
                "summary": "Welcome",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WelcomeResponse"}}
                }
            }
        },
        "/items": {
            "get": {
                "description": "Returns every item in insertion order",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List items",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ItemListEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates an item. Name and description are trimmed and must not be blank.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Create item",
                "parameters": [
                    {"description": "Item fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ItemEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/items/{id}": {
            "get": {
                "description": "Returns the item with the given id. Ids that are not integers are reported as not found.",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Get item",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ItemEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "description": "Replaces name and description. Unknown ids are reported before validation errors.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Update item",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"description": "Item fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ItemEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Delete item",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ItemEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "availableRoutes": {"type": "array", "items": {"type": "string"}},
                "details": {"type": "array", "items": {"type": "string"}},
                "error": {"type": "string", "example": "Item not found"},
                "message": {"type": "string", "example": "Item with ID 7 does not exist"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "Item": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "A fast laptop"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Laptop"}
            }
        },
        "ItemEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/Item"},
                "message": {"type": "string", "example": "Item created successfully"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "ItemListEnvelope": {
            "type": "object",
            "properties": {
                "count": {"type": "integer", "example": 2},
                "data": {"type": "array", "items": {"$ref": "#/definitions/Item"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "ItemRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "A fast laptop"},
                "name": {"type": "string", "example": "Laptop"}
            }
        },
        "WelcomeResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "Welcome to the Simple REST API"},
                "endpoints": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string", "example": "Hello, World!"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Items API",
	Description:      "In-memory items CRUD service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
