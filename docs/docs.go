// Package docs holds the OpenAPI document served under /swagger.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"description": "Registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [{"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/forgot-password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Request a password reset",
                "parameters": [{"description": "Email", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ForgotPasswordRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            }
        },
        "/auth/reset-password": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Reset a password with a reset token",
                "parameters": [{"description": "Token and new password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ResetPasswordRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Get the current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserDB"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Update the current user",
                "parameters": [{"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateProfileRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserDB"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Delete the current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}
                }
            }
        },
        "/dogs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "List the current user's dogs",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.DogDB"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Add a dog",
                "parameters": [{"description": "Dog", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreateDogRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.DogDB"}}}
            }
        },
        "/dogs/{dog_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Get a dog",
                "parameters": [{"type": "string", "description": "Dog ID", "name": "dog_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DogDB"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Update a dog",
                "parameters": [
                    {"type": "string", "description": "Dog ID", "name": "dog_id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateDogRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DogDB"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Delete a dog",
                "parameters": [{"type": "string", "description": "Dog ID", "name": "dog_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/places": {
            "get": {
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "List places",
                "parameters": [
                    {"type": "string", "description": "Place type", "name": "category", "in": "query"},
                    {"type": "integer", "description": "Page", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page", "name": "per_page", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PlaceListResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "Add a place",
                "parameters": [{"description": "Place", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreatePlaceRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.PlaceDB"}}}
            }
        },
        "/places/nearby": {
            "get": {
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "Find places near a point",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "latitude", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude", "name": "longitude", "in": "query", "required": true},
                    {"type": "number", "description": "Radius in km", "name": "radius", "in": "query"},
                    {"type": "string", "description": "Place type", "name": "category", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.NearbyPlace"}}}}
            }
        },
        "/places/{place_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "Get a place",
                "parameters": [{"type": "string", "description": "Place ID", "name": "place_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlaceDB"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "Update a place",
                "parameters": [
                    {"type": "string", "description": "Place ID", "name": "place_id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdatePlaceRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlaceDB"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["places"],
                "summary": "Delete a place",
                "parameters": [{"type": "string", "description": "Place ID", "name": "place_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/playdates": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["playdates"],
                "summary": "Request a playdate",
                "parameters": [{"description": "Playdate", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CreatePlaydateRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.PlaydateDB"}}}
            }
        },
        "/playdates/user": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["playdates"],
                "summary": "List playdates of the current user's dogs",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.PlaydateDB"}}}}
            }
        },
        "/playdates/dog/{dog_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["playdates"],
                "summary": "List playdates of a dog",
                "parameters": [
                    {"type": "string", "description": "Dog ID", "name": "dog_id", "in": "path", "required": true},
                    {"type": "string", "description": "Status filter or upcoming", "name": "status", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.PlaydateDB"}}}}
            }
        },
        "/playdates/{playdate_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["playdates"],
                "summary": "Get a playdate",
                "parameters": [{"type": "string", "description": "Playdate ID", "name": "playdate_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlaydateDB"}}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["playdates"],
                "summary": "Reschedule a playdate",
                "parameters": [
                    {"type": "string", "description": "Playdate ID", "name": "playdate_id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdatePlaydateRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlaydateDB"}}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["playdates"],
                "summary": "Delete a pending playdate",
                "parameters": [{"type": "string", "description": "Playdate ID", "name": "playdate_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}}
            }
        },
        "/playdates/{playdate_id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["playdates"],
                "summary": "Change a playdate status",
                "parameters": [
                    {"type": "string", "description": "Playdate ID", "name": "playdate_id", "in": "path", "required": true},
                    {"description": "New status", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdatePlaydateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PlaydateDB"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "handlers.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "location_latitude": {"type": "number"},
                "location_longitude": {"type": "number"}
            }
        },
        "handlers.LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "handlers.ForgotPasswordRequest": {"type": "object", "required": ["email"], "properties": {"email": {"type": "string"}}},
        "handlers.ResetPasswordRequest": {"type": "object", "required": ["token", "password"], "properties": {"token": {"type": "string"}, "password": {"type": "string"}}},
        "handlers.AuthResponse": {"type": "object", "properties": {"message": {"type": "string"}, "token": {"type": "string"}, "user": {"$ref": "#/definitions/models.UserDB"}}},
        "handlers.UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "location_latitude": {"type": "number"},
                "location_longitude": {"type": "number"},
                "profile_image_url": {"type": "string"}
            }
        },
        "handlers.CreateDogRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age_years": {"type": "integer"},
                "size": {"type": "string", "enum": ["small", "medium", "large"]},
                "temperament": {"type": "array", "items": {"type": "string"}},
                "profile_image_url": {"type": "string"}
            }
        },
        "handlers.UpdateDogRequest": {"$ref": "#/definitions/handlers.CreateDogRequest"},
        "handlers.CreatePlaceRequest": {
            "type": "object",
            "required": ["name", "type"],
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["park", "cafe", "hotel", "beach", "restaurant", "store", "other"]},
                "address_street": {"type": "string"},
                "address_city": {"type": "string"},
                "address_state_province": {"type": "string"},
                "address_postal_code": {"type": "string"},
                "address_country": {"type": "string"},
                "location_latitude": {"type": "number"},
                "location_longitude": {"type": "number"},
                "description": {"type": "string"},
                "images_urls": {"type": "array", "items": {"type": "string"}},
                "rating": {"type": "number"},
                "hours_of_operation": {"type": "object"},
                "website_url": {"type": "string"},
                "phone_number": {"type": "string"}
            }
        },
        "handlers.UpdatePlaceRequest": {"$ref": "#/definitions/handlers.CreatePlaceRequest"},
        "handlers.PlaceListResponse": {
            "type": "object",
            "properties": {
                "places": {"type": "array", "items": {"$ref": "#/definitions/models.PlaceDB"}},
                "total_pages": {"type": "integer"},
                "current_page": {"type": "integer"},
                "total_items": {"type": "integer"}
            }
        },
        "handlers.CreatePlaydateRequest": {
            "type": "object",
            "required": ["dog1_id", "dog2_id", "requester_dog_id", "playdate_time"],
            "properties": {
                "dog1_id": {"type": "string"},
                "dog2_id": {"type": "string"},
                "requester_dog_id": {"type": "string"},
                "playdate_time": {"type": "string", "format": "date-time"},
                "location_description": {"type": "string"},
                "location_latitude": {"type": "number"},
                "location_longitude": {"type": "number"}
            }
        },
        "handlers.UpdatePlaydateRequest": {
            "type": "object",
            "properties": {
                "playdate_time": {"type": "string", "format": "date-time"},
                "location_description": {"type": "string"},
                "location_latitude": {"type": "number"},
                "location_longitude": {"type": "number"}
            }
        },
        "handlers.UpdatePlaydateStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "enum": ["pending", "accepted", "declined", "cancelled", "completed"]}}
        },
        "models.UserDB": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "location_latitude": {"type": "number"},
                "location_longitude": {"type": "number"},
                "profile_image_url": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.DogDB": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "age_years": {"type": "integer"},
                "size": {"type": "string"},
                "temperament": {"type": "array", "items": {"type": "string"}},
                "profile_image_url": {"type": "string"}
            }
        },
        "models.PlaceDB": {"$ref": "#/definitions/handlers.CreatePlaceRequest"},
        "models.NearbyPlace": {"$ref": "#/definitions/handlers.CreatePlaceRequest"},
        "models.PlaydateDB": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "dog1_id": {"type": "string"},
                "dog2_id": {"type": "string"},
                "requester_dog_id": {"type": "string"},
                "playdate_time": {"type": "string"},
                "status": {"type": "string"},
                "location_description": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "PawPals API",
	Description:      "Backend for dog owners: profiles, dogs, dog-friendly places and playdates",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
