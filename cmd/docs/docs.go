// Package docs serves the OpenAPI 2.0 document for the HTTP API at /swagger.
// It mirrors the swag annotations on the handlers; keep both in step when a
// route changes.
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
        "/invoices": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists the caller's invoices, newest invoice date first, using token-based pagination.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "List invoices",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Number of invoices to return (default 20, max 100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Token from the previous page",
                        "name": "nextToken",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListInvoicesResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to list invoices",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Recomputes every item, validates the invoice and saves it for the caller.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "Create an invoice",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Invoice details",
                        "name": "invoice",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateInvoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input or failed invoice rules",
                        "schema": {
                            "$ref": "#/definitions/handlers.ValidationErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Entity or buyer belongs to another user",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Invoice number already used for this entity",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to create invoice",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/invoices/preview": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Recomputes a draft invoice and reports its totals and validation issues without saving it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "Preview an invoice",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Draft invoice",
                        "name": "invoice",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateInvoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoicePreviewResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Too many requests",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/invoices/items/recompute": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Applies one field edit, or recomputes for a set of changed fields, and returns the derived values.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "Recompute a line item",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Item and edit",
                        "name": "edit",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RecomputeItemRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.LineItemResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input or unknown field",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Too many requests",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/invoices/{invoiceID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Retrieves an invoice with its items and totals.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "Get an invoice by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Invoice ID",
                        "name": "invoiceID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve invoice",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Removes an invoice and its items.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "invoices"
                ],
                "summary": "Delete an invoice",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Invoice ID",
                        "name": "invoiceID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to delete invoice",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/invoices/{invoiceID}/report": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lays the invoice out using the caller's field visibility and currency settings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Render an invoice for display",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Invoice ID",
                        "name": "invoiceID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Config key (invoicePreview or invoiceReport, default invoiceReport)",
                        "name": "config",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.InvoiceReport"
                        }
                    },
                    "400": {
                        "description": "Unknown config key",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/invoices/{invoiceID}/export": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Renders the invoice report as a spreadsheet and stores it in the report store.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "reports"
                ],
                "summary": "Export an invoice report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Invoice ID",
                        "name": "invoiceID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.ExportReportResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Invoice not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Report export is not configured",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/buyers": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists the caller's buyers.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "buyers"
                ],
                "summary": "List buyers",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page size (default 20, max 100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.BuyerResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates a buyer; the registration type is inferred from the NTN when omitted.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "buyers"
                ],
                "summary": "Create a buyer",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Buyer details",
                        "name": "buyer",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateBuyerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.BuyerResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to create buyer",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/buyers/{buyerID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Retrieves one of the caller's buyers.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "buyers"
                ],
                "summary": "Get a buyer by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Buyer ID",
                        "name": "buyerID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BuyerResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Buyer not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/entities": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists the caller's seller entities.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entities"
                ],
                "summary": "List seller entities",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page size (default 20, max 100)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Offset",
                        "name": "offset",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.EntityResponse"
                            }
                        }
                    },
                    "400": {
                        "description": "Invalid query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Registers a business that issues invoices.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entities"
                ],
                "summary": "Create a seller entity",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Entity details",
                        "name": "entity",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateEntityRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.EntityResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "NTN already registered",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/entities/{entityID}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Retrieves one of the caller's seller entities.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "entities"
                ],
                "summary": "Get a seller entity by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Entity ID",
                        "name": "entityID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.EntityResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Entity not found",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/users/settings": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Returns the effective field configs and currency, defaults merged with the caller's overrides.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Get the caller's settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SettingsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to load settings",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Merges config overrides and an optional currency into the caller's settings.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Update the caller's settings",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Settings patch",
                        "name": "settings",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateSettingsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SettingsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to update settings",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/users/settings/visibility": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Reports the effective visibility of one field; unknown fields are visible.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Check whether a field is visible",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Config key, e.g. invoicePreview",
                        "name": "configKey",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Section name",
                        "name": "section",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Field key",
                        "name": "field",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.FieldVisibilityResponse"
                        }
                    },
                    "400": {
                        "description": "Missing query parameters",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sets the visibility of one field; required fields stay visible.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "settings"
                ],
                "summary": "Show or hide a field",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Field to toggle",
                        "name": "toggle",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetVisibilityRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SectionsResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid input or unknown config",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Sale types, units of measure, rates, document types, provinces and currencies.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "List invoice form options",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CatalogResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/currencies/resolve": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Maps a free-text currency preference to the symbol and label used for display.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "Resolve a currency preference",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Currency preference, e.g. USD",
                        "name": "preference",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.CurrencyDisplay"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handlers.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Currency": {
            "type": "object",
            "properties": {
                "currencyCode": {
                    "type": "string"
                },
                "symbol": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "precision": {
                    "type": "integer"
                }
            }
        },
        "domain.CurrencyDisplay": {
            "type": "object",
            "properties": {
                "symbol": {
                    "type": "string"
                },
                "isoLikeLabel": {
                    "type": "string"
                }
            }
        },
        "domain.FieldConfig": {
            "type": "object",
            "additionalProperties": {
                "$ref": "#/definitions/domain.Sections"
            }
        },
        "domain.FieldDescriptor": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "isVisible": {
                    "type": "boolean"
                },
                "required": {
                    "type": "boolean"
                }
            }
        },
        "domain.InvoiceReport": {
            "type": "object",
            "properties": {
                "invoiceID": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "currency": {
                    "$ref": "#/definitions/domain.CurrencyDisplay"
                },
                "business": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReportField"
                    }
                },
                "buyer": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReportField"
                    }
                },
                "meta": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReportField"
                    }
                },
                "columns": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReportColumn"
                    }
                },
                "rows": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                },
                "totals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ReportField"
                    }
                }
            }
        },
        "domain.ReportColumn": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                }
            }
        },
        "domain.ReportField": {
            "type": "object",
            "properties": {
                "key": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                }
            }
        },
        "domain.Sections": {
            "type": "object",
            "additionalProperties": {
                "type": "array",
                "items": {
                    "$ref": "#/definitions/domain.FieldDescriptor"
                }
            }
        },
        "dto.BuyerResponse": {
            "type": "object",
            "properties": {
                "buyerID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "ntn": {
                    "type": "string"
                },
                "cnic": {
                    "type": "string"
                },
                "strn": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "province": {
                    "type": "string"
                },
                "registrationType": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.CatalogResponse": {
            "type": "object",
            "properties": {
                "saleTypes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "sroSaleTypes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "unitsOfMeasure": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "rates": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "documentTypes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "provinces": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "registrationTypes": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "currencies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Currency"
                    }
                },
                "placeholders": {
                    "$ref": "#/definitions/dto.Placeholders"
                }
            }
        },
        "dto.CreateBuyerRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "ntn": {
                    "type": "string"
                },
                "cnic": {
                    "type": "string"
                },
                "strn": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "province": {
                    "type": "string"
                },
                "registrationType": {
                    "type": "string",
                    "enum": [
                        "Registered",
                        "Unregistered"
                    ]
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "dto.CreateEntityRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "ntn": {
                    "type": "string"
                },
                "strn": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "province": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            },
            "required": [
                "name",
                "ntn"
            ]
        },
        "dto.CreateInvoiceRequest": {
            "type": "object",
            "properties": {
                "entityID": {
                    "type": "string"
                },
                "invoiceNumber": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "example": "2024-03-01"
                },
                "documentType": {
                    "type": "string"
                },
                "salesman": {
                    "type": "string"
                },
                "referenceNumber": {
                    "type": "string"
                },
                "buyerID": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LineItemRequest"
                    }
                }
            },
            "required": [
                "entityID"
            ]
        },
        "dto.EntityResponse": {
            "type": "object",
            "properties": {
                "entityID": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "ntn": {
                    "type": "string"
                },
                "strn": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "province": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "dto.ExportReportResponse": {
            "type": "object",
            "properties": {
                "invoiceID": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "contentType": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                }
            }
        },
        "dto.FieldVisibilityResponse": {
            "type": "object",
            "properties": {
                "configKey": {
                    "type": "string"
                },
                "section": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                },
                "visible": {
                    "type": "boolean"
                }
            }
        },
        "dto.InvoicePreviewResponse": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LineItemResponse"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/dto.TotalsResponse"
                },
                "totalInvoiceValue": {
                    "type": "number"
                },
                "submittable": {
                    "type": "boolean"
                },
                "issues": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ValidationIssue"
                    }
                }
            }
        },
        "dto.InvoiceResponse": {
            "type": "object",
            "properties": {
                "invoiceID": {
                    "type": "string"
                },
                "entityID": {
                    "type": "string"
                },
                "invoiceNumber": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "documentType": {
                    "type": "string"
                },
                "salesman": {
                    "type": "string"
                },
                "referenceNumber": {
                    "type": "string"
                },
                "buyerID": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.LineItemResponse"
                    }
                },
                "totals": {
                    "$ref": "#/definitions/dto.TotalsResponse"
                },
                "totalInvoiceValue": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "createdBy": {
                    "type": "string"
                }
            }
        },
        "dto.LineItemRequest": {
            "type": "object",
            "properties": {
                "itemID": {
                    "type": "string"
                },
                "hsCode": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "saleType": {
                    "type": "string"
                },
                "uom": {
                    "type": "string"
                },
                "rate": {
                    "type": "string"
                },
                "sroScheduleNo": {
                    "type": "string"
                },
                "sroItemSerialNo": {
                    "type": "string"
                },
                "quantity": {
                    "type": "number"
                },
                "unitPrice": {
                    "type": "number"
                },
                "salesValue": {
                    "type": "number"
                },
                "salesTax": {
                    "type": "number"
                },
                "discount": {
                    "type": "number"
                },
                "otherDiscount": {
                    "type": "number"
                },
                "tradeDiscount": {
                    "type": "number"
                },
                "salesTaxWithheld": {
                    "type": "number"
                },
                "extraTax": {
                    "type": "number"
                },
                "furtherTax": {
                    "type": "number"
                },
                "federalExciseDuty": {
                    "type": "number"
                },
                "t236g": {
                    "type": "number"
                },
                "t236h": {
                    "type": "number"
                },
                "fixedValue": {
                    "type": "number"
                },
                "totalItemValue": {
                    "type": "number"
                }
            }
        },
        "dto.LineItemResponse": {
            "type": "object",
            "properties": {
                "itemID": {
                    "type": "string"
                },
                "hsCode": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "saleType": {
                    "type": "string"
                },
                "uom": {
                    "type": "string"
                },
                "rate": {
                    "type": "string"
                },
                "sroScheduleNo": {
                    "type": "string"
                },
                "sroItemSerialNo": {
                    "type": "string"
                },
                "quantity": {
                    "type": "number"
                },
                "unitPrice": {
                    "type": "number"
                },
                "salesValue": {
                    "type": "number"
                },
                "salesTax": {
                    "type": "number"
                },
                "discount": {
                    "type": "number"
                },
                "otherDiscount": {
                    "type": "number"
                },
                "tradeDiscount": {
                    "type": "number"
                },
                "salesTaxWithheld": {
                    "type": "number"
                },
                "extraTax": {
                    "type": "number"
                },
                "furtherTax": {
                    "type": "number"
                },
                "federalExciseDuty": {
                    "type": "number"
                },
                "t236g": {
                    "type": "number"
                },
                "t236h": {
                    "type": "number"
                },
                "fixedValue": {
                    "type": "number"
                },
                "totalItemValue": {
                    "type": "number"
                },
                "rateKind": {
                    "type": "string"
                },
                "rateValue": {
                    "type": "number"
                }
            }
        },
        "dto.ListInvoicesResponse": {
            "type": "object",
            "properties": {
                "invoices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InvoiceResponse"
                    }
                },
                "nextToken": {
                    "type": "string"
                }
            }
        },
        "dto.Placeholders": {
            "type": "object",
            "properties": {
                "saleType": {
                    "type": "string"
                },
                "uom": {
                    "type": "string"
                },
                "rate": {
                    "type": "string"
                },
                "sroScheduleNo": {
                    "type": "string"
                },
                "sroItemSerialNo": {
                    "type": "string"
                }
            }
        },
        "dto.RecomputeItemRequest": {
            "type": "object",
            "properties": {
                "item": {
                    "$ref": "#/definitions/dto.LineItemRequest"
                },
                "field": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                },
                "changedFields": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "allowTaxRecalc": {
                    "type": "boolean"
                }
            }
        },
        "dto.SectionsResponse": {
            "type": "object",
            "properties": {
                "configKey": {
                    "type": "string"
                },
                "sections": {
                    "$ref": "#/definitions/domain.Sections"
                }
            }
        },
        "dto.SetVisibilityRequest": {
            "type": "object",
            "properties": {
                "configKey": {
                    "type": "string"
                },
                "section": {
                    "type": "string"
                },
                "field": {
                    "type": "string"
                },
                "visible": {
                    "type": "boolean"
                }
            },
            "required": [
                "configKey",
                "section",
                "field",
                "visible"
            ]
        },
        "dto.SettingsBody": {
            "type": "object",
            "properties": {
                "configs": {
                    "$ref": "#/definitions/domain.FieldConfig"
                },
                "currency": {
                    "type": "string"
                },
                "currencyDisplay": {
                    "$ref": "#/definitions/domain.CurrencyDisplay"
                }
            }
        },
        "dto.SettingsPatch": {
            "type": "object",
            "properties": {
                "configs": {
                    "$ref": "#/definitions/domain.FieldConfig"
                },
                "currency": {
                    "type": "string"
                }
            }
        },
        "dto.SettingsResponse": {
            "type": "object",
            "properties": {
                "settings": {
                    "$ref": "#/definitions/dto.SettingsBody"
                }
            }
        },
        "dto.TotalsResponse": {
            "type": "object",
            "properties": {
                "subtotal": {
                    "type": "number"
                },
                "totalSalesTax": {
                    "type": "number"
                },
                "totalExtraTax": {
                    "type": "number"
                },
                "totalFurtherTax": {
                    "type": "number"
                },
                "totalFED": {
                    "type": "number"
                },
                "totalTaxWithheld": {
                    "type": "number"
                },
                "total236g": {
                    "type": "number"
                },
                "total236h": {
                    "type": "number"
                },
                "totalDiscount": {
                    "type": "number"
                },
                "totalOtherDiscount": {
                    "type": "number"
                },
                "totalTradeDiscount": {
                    "type": "number"
                },
                "grandTotal": {
                    "type": "number"
                }
            }
        },
        "dto.UpdateSettingsRequest": {
            "type": "object",
            "properties": {
                "settings": {
                    "$ref": "#/definitions/dto.SettingsPatch"
                }
            },
            "required": [
                "settings"
            ]
        },
        "dto.ValidationIssue": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "itemIndex": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handlers.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "issues": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.ValidationIssue"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sales Tax Invoicing API",
	Description:      "Line-item sales tax calculation, invoice storage and per-user display settings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
