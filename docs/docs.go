// Package docs registers the Swagger document served at /swagger/*.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["Health"],
                "summary": "Server banner",
                "responses": {
                    "200": {"description": "Server name", "schema": {"type": "string"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Store liveness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Message"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Message"}}
                }
            }
        },
        "/jwt": {
            "get": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Token"],
                "summary": "Issue a signed token",
                "parameters": [
                    {"description": "Claims", "name": "payload", "in": "body", "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/cars": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Car"],
                "summary": "Get all cars",
                "responses": {
                    "200": {"description": "List of cars", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": {}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Car"],
                "summary": "Add a car",
                "parameters": [
                    {"description": "Car document", "name": "car", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Insert result", "schema": {"type": "object", "additionalProperties": {}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/cars/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Car"],
                "summary": "Get a car by ID",
                "parameters": [{"type": "string", "description": "Car ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Car details or null", "schema": {"type": "object", "additionalProperties": {}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Car"],
                "summary": "Update a car",
                "parameters": [
                    {"type": "string", "description": "Car ID", "name": "id", "in": "path", "required": true},
                    {"description": "Car fields", "name": "car", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCarRequest"}}
                ],
                "responses": {
                    "200": {"description": "Update result", "schema": {"type": "object", "additionalProperties": {}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Car"],
                "summary": "Delete a car",
                "parameters": [{"type": "string", "description": "Car ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Delete result", "schema": {"type": "object", "additionalProperties": {}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/my-cars/{email}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Car"],
                "summary": "Get cars listed by an owner",
                "parameters": [{"type": "string", "description": "Owner email", "name": "email", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "List of cars", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": {}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/recent-cars": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Car"],
                "summary": "Get the most recently available cars",
                "responses": {
                    "200": {"description": "List of cars", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": {}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/booking-cars": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Get all bookings",
                "responses": {
                    "200": {"description": "List of bookings", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": {}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Add a booking",
                "parameters": [
                    {"description": "Booking document", "name": "booking", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Insert result", "schema": {"type": "object", "additionalProperties": {}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/booking-cars/{email}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Get bookings made by a user",
                "parameters": [{"type": "string", "description": "User email", "name": "email", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "List of bookings", "schema": {"type": "array", "items": {"type": "object", "additionalProperties": {}}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        },
        "/booking-cars/{id}": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Cancel a booking",
                "parameters": [{"type": "string", "description": "Booking ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Update result", "schema": {"type": "object", "additionalProperties": {}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Booking"],
                "summary": "Delete a booking",
                "parameters": [{"type": "string", "description": "Booking ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Delete result", "schema": {"type": "object", "additionalProperties": {}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Error"}}
                }
            }
        }
    },
    "definitions": {
        "dto.TokenResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "dto.UpdateCarRequest": {
            "type": "object",
            "properties": {
                "carModel": {},
                "dailyRentalPrice": {},
                "availabilityDate": {},
                "vehicleRegistrationNumber": {},
                "features": {},
                "description": {},
                "bookingCount": {},
                "imageUrl": {},
                "location": {},
                "bookingStatus": {}
            }
        },
        "response.Error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "response.Message": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Neo Drive API",
	Description:      "Car listing and booking service backed by MongoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
