// Package docs は Swagger UI が読み込む API ドキュメントを登録する
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}",
        "contact": {
            "name": "ratings maintainers",
            "email": "me@me.com"
        }
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "securityDefinitions": {
        "bearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "JWT Authorization header using the Bearer scheme. Example: 'Authorization: Bearer {token}'"
        }
    },
    "security": [{"bearerAuth": []}],
    "paths": {
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in and start a session",
                "security": [],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginInput"}}],
                "responses": {
                    "200": {"description": "Session cookie set", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/Message"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "End the session",
                "responses": {
                    "200": {"description": "Logged out", "schema": {"$ref": "#/definitions/Message"}},
                    "401": {"description": "Token missing", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/auth/profile": {
            "get": {
                "tags": ["auth"],
                "summary": "Current session user",
                "security": [],
                "responses": {
                    "200": {"description": "Profile", "schema": {"$ref": "#/definitions/Profile"}},
                    "401": {"description": "Login required", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/users": {
            "get": {
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "Users", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "post": {
                "tags": ["users"],
                "summary": "Create a user (Admin)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/UserWritten"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/Message"}},
                    "403": {"description": "Admins only", "schema": {"$ref": "#/definitions/Message"}},
                    "409": {"description": "User already exists", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/users/{id}": {
            "parameters": [{"in": "path", "name": "id", "required": true, "type": "integer"}],
            "get": {
                "tags": ["users"],
                "summary": "Get a user (Admin)",
                "responses": {
                    "200": {"description": "User", "schema": {"$ref": "#/definitions/User"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "put": {
                "tags": ["users"],
                "summary": "Update a user (Admin)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserInput"}}],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/UserWritten"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/Message"}},
                    "409": {"description": "User already exists", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "delete": {
                "tags": ["users"],
                "summary": "Delete a user (Admin)",
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/Message"}},
                    "409": {"description": "User still has reviews", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/users/{id}/reviews": {
            "get": {
                "tags": ["users"],
                "summary": "Reviews written by a user (Admin)",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Reviews", "schema": {"type": "array", "items": {"$ref": "#/definitions/Review"}}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/roles": {
            "get": {
                "tags": ["roles"],
                "summary": "List roles (Admin)",
                "responses": {
                    "200": {"description": "Roles", "schema": {"type": "array", "items": {"$ref": "#/definitions/Role"}}}
                }
            },
            "post": {
                "tags": ["roles"],
                "summary": "Create a role (Admin)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RoleInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/RoleWritten"}},
                    "409": {"description": "Role already exists", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/roles/{id}": {
            "parameters": [{"in": "path", "name": "id", "required": true, "type": "integer"}],
            "get": {
                "tags": ["roles"],
                "summary": "Get a role (Admin)",
                "responses": {
                    "200": {"description": "Role", "schema": {"$ref": "#/definitions/Role"}},
                    "404": {"description": "Role not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "put": {
                "tags": ["roles"],
                "summary": "Rename a role (Admin)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RoleInput"}}],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/RoleWritten"}},
                    "404": {"description": "Role not found", "schema": {"$ref": "#/definitions/Message"}},
                    "409": {"description": "Role already exists", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "delete": {
                "tags": ["roles"],
                "summary": "Delete a role (Admin)",
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Role not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/review": {
            "get": {
                "tags": ["reviews"],
                "summary": "List reviews (Admin)",
                "responses": {
                    "200": {"description": "Reviews", "schema": {"type": "array", "items": {"$ref": "#/definitions/Review"}}}
                }
            },
            "post": {
                "tags": ["reviews"],
                "summary": "Create a review (Admin)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateReviewInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ReviewWritten"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        },
        "/api/review/{id}": {
            "parameters": [{"in": "path", "name": "id", "required": true, "type": "integer"}],
            "get": {
                "tags": ["reviews"],
                "summary": "Get a review (Admin)",
                "responses": {
                    "200": {"description": "Review", "schema": {"$ref": "#/definitions/Review"}},
                    "404": {"description": "Review not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "put": {
                "tags": ["reviews"],
                "summary": "Edit a review (Admin)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateReviewInput"}}],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ReviewWritten"}},
                    "404": {"description": "Review not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            },
            "delete": {
                "tags": ["reviews"],
                "summary": "Delete a review (Admin)",
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Message"}},
                    "404": {"description": "Review not found", "schema": {"$ref": "#/definitions/Message"}}
                }
            }
        }
    },
    "definitions": {
        "Message": {"type": "object", "properties": {"message": {"type": "string"}}},
        "LoginInput": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "LoginResponse": {"type": "object", "properties": {"message": {"type": "string"}, "access_token": {"type": "string"}}},
        "Profile": {"type": "object", "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "email": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}}},
        "Role": {"type": "object", "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}},
        "RoleInput": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}},
        "RoleWritten": {"type": "object", "properties": {"message": {"type": "string"}, "role": {"$ref": "#/definitions/Role"}}},
        "User": {"type": "object", "properties": {"id": {"type": "integer"}, "username": {"type": "string"}, "email": {"type": "string"}, "created_at": {"type": "string", "format": "date-time"}, "roles": {"type": "array", "items": {"$ref": "#/definitions/Role"}}}},
        "CreateUserInput": {"type": "object", "required": ["username", "email", "password"], "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}}},
        "UpdateUserInput": {"type": "object", "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "roles": {"type": "array", "items": {"type": "string"}}}},
        "UserWritten": {"type": "object", "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/User"}}},
        "ReviewAuthor": {"type": "object", "properties": {"id": {"type": "integer"}, "username": {"type": "string"}}},
        "Review": {"type": "object", "properties": {"id": {"type": "integer"}, "content": {"type": "string"}, "user_id": {"type": "integer"}, "user": {"$ref": "#/definitions/ReviewAuthor"}, "created_at": {"type": "string", "format": "date-time"}}},
        "CreateReviewInput": {"type": "object", "required": ["content", "user_id"], "properties": {"content": {"type": "string"}, "user_id": {"type": "integer"}}},
        "UpdateReviewInput": {"type": "object", "required": ["content"], "properties": {"content": {"type": "string"}}},
        "ReviewWritten": {"type": "object", "properties": {"message": {"type": "string"}, "review": {"$ref": "#/definitions/Review"}}}
    }
}`

// SwaggerInfo は実行時に書き換えられる API のメタ情報
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RATINGS API",
	Description:      "Ratings REST API built with gin and gorm",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
