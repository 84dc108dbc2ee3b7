// Package docs registra el documento Swagger servido en /swagger/.
// Se mantiene en el formato que genera `swag init -g cmd/api/main.go`.
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
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/router.healthResponse"}}}
            }
        },
        "/api/user": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Registrar usuario",
                "parameters": [{"description": "Datos del usuario", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.registerRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "All fields are required.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "500": {"description": "Server error.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}}
                }
            }
        },
        "/api/user/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Login",
                "parameters": [{"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.credentialsRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpjson.MessageBody"}},
                    "400": {"description": "Email and password are required.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "403": {"description": "Invalid email or password.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "500": {"description": "Server error.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}}
                }
            }
        },
        "/api/user/verify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Emitir token",
                "parameters": [{"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.credentialsRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.tokenResponse"}},
                    "400": {"description": "Email and password are required.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "403": {"description": "Invalid email or password.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "500": {"description": "Server error.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}}
                }
            }
        },
        "/api/animal": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Crear animal",
                "parameters": [{"description": "Datos del animal", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animals.createAnimalRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.animalResponse"}},
                    "400": {"description": "All fields are required.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "401": {"description": "Access denied, token missing.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "403": {"description": "Invalid token.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "500": {"description": "Server error.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}}
                }
            }
        },
        "/api/training": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["training"],
                "summary": "Registrar sesión de entrenamiento",
                "parameters": [{"description": "Datos de la sesión", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/training.createLogRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/training.logResponse"}},
                    "400": {"description": "All fields are required. / Animal not found. / This animal does not belong to the specified user.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "401": {"description": "Access denied, token missing.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "403": {"description": "Invalid token.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}},
                    "500": {"description": "Server error.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}}
                }
            }
        },
        "/api/admin/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Listar usuarios (admin)",
                "parameters": [
                    {"type": "integer", "description": "Página (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Tamaño de página (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.usersPageResponse"}},
                    "500": {"description": "Server error.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}}
                }
            }
        },
        "/api/admin/animals": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Listar animales (admin)",
                "parameters": [
                    {"type": "integer", "description": "Página (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Tamaño de página (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.animalsPageResponse"}},
                    "500": {"description": "Server error.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}}
                }
            }
        },
        "/api/admin/training": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Listar sesiones (admin)",
                "parameters": [
                    {"type": "integer", "description": "Página (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Tamaño de página (default 10)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/training.logsPageResponse"}},
                    "500": {"description": "Server error.", "schema": {"$ref": "#/definitions/httpjson.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "httpjson.ErrorBody": {"type": "object", "properties": {"error": {"type": "string"}}},
        "httpjson.MessageBody": {"type": "object", "properties": {"message": {"type": "string"}}},
        "router.healthResponse": {"type": "object", "properties": {"healthy": {"type": "boolean"}}},
        "users.registerRequest": {
            "type": "object",
            "required": ["email", "firstName", "lastName", "password"],
            "properties": {
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "users.credentialsRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "users.tokenResponse": {"type": "object", "properties": {"token": {"type": "string"}}},
        "users.usersPageResponse": {
            "type": "object",
            "properties": {
                "currentPage": {"description": "page tal como llegó (string), o 1 si no vino"},
                "totalPages": {"type": "integer"},
                "users": {"type": "array", "items": {"$ref": "#/definitions/users.userResponse"}}
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "required": ["dateOfBirth", "name", "species"],
            "properties": {
                "dateOfBirth": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string"}
            }
        },
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "hoursTrained": {"type": "number"},
                "name": {"type": "string"},
                "owner": {"type": "string"}
            }
        },
        "animals.animalsPageResponse": {
            "type": "object",
            "properties": {
                "animals": {"type": "array", "items": {"$ref": "#/definitions/animals.animalResponse"}},
                "currentPage": {"description": "page tal como llegó (string), o 1 si no vino"},
                "totalPages": {"type": "integer"}
            }
        },
        "training.createLogRequest": {
            "type": "object",
            "required": ["animalId", "description", "hours"],
            "properties": {
                "animalId": {"type": "string"},
                "description": {"type": "string"},
                "hours": {"type": "number"}
            }
        },
        "training.logResponse": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "animal": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "hours": {"type": "number"},
                "trainingLogVideo": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "training.logsPageResponse": {
            "type": "object",
            "properties": {
                "currentPage": {"description": "page tal como llegó (string), o 1 si no vino"},
                "totalPages": {"type": "integer"},
                "trainingLogs": {"type": "array", "items": {"$ref": "#/definitions/training.logResponse"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer <token> obtenido en /api/user/verify",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "2.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Animal Training API",
	Description:      "Usuarios, animales y sesiones de entrenamiento.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
