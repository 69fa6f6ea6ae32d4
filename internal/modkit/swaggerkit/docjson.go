//go:build swag

package swaggerkit

import docs "langid/internal/services/api/docs"

// docReader returns the spec generated by swag init
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }
