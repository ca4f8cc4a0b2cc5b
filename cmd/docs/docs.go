// Package docs holds the swagger specification served in non-production
// environments. Regenerate with `swag init` after changing handler
// annotations.
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
        "/api/{code}/auth": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Check an access code",
                "description": "Confirms that the access code in the path is registered",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Access code (4 alphanumeric characters)",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.AuthResponse"}
                    },
                    "400": {"description": "Malformed access code"},
                    "401": {"description": "Unknown access code"}
                }
            }
        },
        "/api/{code}/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get user profile and bookings",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Access code (4 alphanumeric characters)",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.UserInfoResponse"}
                    },
                    "401": {"description": "Unknown access code"}
                }
            }
        },
        "/api/{code}/booking": {
            "get": {
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "List available places per date",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Access code (4 alphanumeric characters)",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Map of date (YYYY-MM-DD) to free places",
                        "schema": {"type": "object"}
                    },
                    "401": {"description": "Unknown access code"}
                }
            }
        },
        "/api/{code}/book": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["booking"],
                "summary": "Book a place",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Access code (4 alphanumeric characters)",
                        "name": "code",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Date and place to book",
                        "name": "booking",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateBookingRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/dto.CreateBookingResponse"}
                    },
                    "400": {"description": "Invalid input"},
                    "401": {"description": "Unknown access code"},
                    "404": {"description": "Unknown date or place"},
                    "409": {"description": "Place already booked"}
                }
            }
        }
    },
    "definitions": {
        "dto.AuthResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"}
            }
        },
        "dto.UserInfoResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "photoUrl": {"type": "string"},
                "booking": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/dto.BookingInfo"}
                }
            }
        },
        "dto.BookingInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "place": {"type": "string"}
            }
        },
        "dto.CreateBookingRequest": {
            "type": "object",
            "required": ["date", "placeId"],
            "properties": {
                "date": {"type": "string", "example": "2024-01-01"},
                "placeId": {"type": "integer", "example": 1}
            }
        },
        "dto.CreateBookingResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "bookingId": {"type": "integer"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Desk Booking API",
	Description:      "Office desk booking service: check an access code, view available desks per date, reserve one.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
