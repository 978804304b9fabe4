// Package docs registers the Swagger specification for the storefront
// API, maintained in the swag template format and served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "token and session"},
                    "401": {"description": "invalid credentials"},
                    "422": {"description": "validation failed"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "created user"},
                    "409": {"description": "email already registered"},
                    "422": {"description": "validation failed"}
                }
            }
        },
        "/auth/forgot": {
            "post": {
                "tags": ["auth"],
                "summary": "Reset password (demo)",
                "responses": {
                    "200": {"description": "temporary password set"},
                    "404": {"description": "user not found"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Logout",
                "security": [{"BearerAuth": []}],
                "responses": {"204": {"description": "session cleared"}}
            }
        },
        "/v1/session": {
            "get": {
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {"200": {"description": "session or guest"}}
            }
        },
        "/v1/products": {
            "get": {
                "tags": ["catalog"],
                "summary": "List products",
                "parameters": [
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "q", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "products"}}
            }
        },
        "/v1/products/categories": {
            "get": {
                "tags": ["catalog"],
                "summary": "List distinct categories",
                "responses": {"200": {"description": "categories"}}
            }
        },
        "/v1/products/{id}": {
            "get": {
                "tags": ["catalog"],
                "summary": "Get a product",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "product"},
                    "404": {"description": "product not found"}
                }
            }
        },
        "/v1/admin/products": {
            "post": {
                "tags": ["admin"],
                "summary": "Create a product",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "201": {"description": "created product"},
                    "403": {"description": "forbidden"},
                    "422": {"description": "validation failed"}
                }
            }
        },
        "/v1/admin/products/{id}": {
            "put": {
                "tags": ["admin"],
                "summary": "Update a product",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "updated product"}}
            },
            "delete": {
                "tags": ["admin"],
                "summary": "Delete a product",
                "security": [{"BearerAuth": []}],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {"204": {"description": "deleted"}}
            }
        },
        "/v1/cart": {
            "get": {
                "tags": ["cart"],
                "summary": "Get the cart",
                "responses": {"200": {"description": "joined cart view"}}
            },
            "delete": {
                "tags": ["cart"],
                "summary": "Clear the cart",
                "responses": {"200": {"description": "emptied cart"}}
            }
        },
        "/v1/cart/items": {
            "post": {
                "tags": ["cart"],
                "summary": "Add a product to the cart",
                "responses": {"200": {"description": "refreshed cart"}}
            }
        },
        "/v1/cart/items/{productID}": {
            "put": {
                "tags": ["cart"],
                "summary": "Set the quantity of a cart line",
                "parameters": [{"name": "productID", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "refreshed cart"}}
            },
            "delete": {
                "tags": ["cart"],
                "summary": "Remove a cart line",
                "parameters": [{"name": "productID", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "refreshed cart"}}
            }
        },
        "/v1/profile": {
            "get": {
                "tags": ["profile"],
                "summary": "Get profile",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "profile"}}
            },
            "put": {
                "tags": ["profile"],
                "summary": "Update profile",
                "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "refreshed session"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BettoGames Storefront API",
	Description:      "Demo videogame storefront: catalog browsing, carts, sessions and an admin product panel over a key-value store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
