// Package docs registers the OpenAPI document with swag so echo-swagger can
// serve it under /swagger.
package docs

import (
	"ordermanagement/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Order Management API",
	Description:      "Customers, products and orders with an order status lifecycle.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(api.OpenAPI),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
