// Package webhookauth verifies that inbound webhooks were signed by the
// telephony platform.
package webhookauth

//go:generate go run go.uber.org/mock/mockgen@latest -source=middleware.go -destination=mocks_test.go -package=webhookauth

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mclovin84/callscreen/internal/observability"
)

// SignatureValidator checks a platform signature against request content.
type SignatureValidator interface {
	ValidateSignature(url string, params map[string]string, signature string) bool
	ValidateBodySignature(url string, body []byte, signature string) bool
}

// Verifier rejects webhook requests whose signature does not match. A nil
// validator disables verification and every request passes.
type Verifier struct {
	validator SignatureValidator
	baseURL   string
	logger    *observability.Logger
}

// New creates a verifier. baseURL is the public URL the platform signs
// against; when empty the request's own host is used.
func New(validator SignatureValidator, baseURL string, logger *observability.Logger) *Verifier {
	return &Verifier{
		validator: validator,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		logger:    logger,
	}
}

// Middleware returns the gin middleware enforcing signature checks.
func (v *Verifier) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v.validator == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		signature := c.GetHeader("X-Signalwire-Signature")
		if signature == "" {
			signature = c.GetHeader("X-Twilio-Signature")
		}
		url := v.requestURL(c)

		var valid bool
		if strings.HasPrefix(c.ContentType(), "application/json") {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				v.logger.Error(ctx, "failed to read webhook body", err)
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
				return
			}
			// Handlers bind the body after us.
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			valid = v.validator.ValidateBodySignature(url, body, signature)
		} else {
			if err := c.Request.ParseForm(); err != nil {
				v.logger.Error(ctx, "failed to parse webhook form", err)
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
				return
			}
			params := make(map[string]string, len(c.Request.PostForm))
			for key, values := range c.Request.PostForm {
				if len(values) > 0 {
					params[key] = values[0]
				}
			}
			valid = v.validator.ValidateSignature(url, params, signature)
		}

		if !valid {
			v.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "path", Value: c.Request.URL.Path},
			), "rejected webhook with bad signature")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
			return
		}
		c.Next()
	}
}

func (v *Verifier) requestURL(c *gin.Context) string {
	if v.baseURL != "" {
		return v.baseURL + c.Request.URL.RequestURI()
	}
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.RequestURI()
}
