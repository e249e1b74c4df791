package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/sangkips/alinea-erp/internal/domain/repository"
	"github.com/sangkips/alinea-erp/internal/presentation/http/dto/response"
	"github.com/sangkips/alinea-erp/pkg/logger"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// DefaultIdempotencyKeyTTL is how long keys are valid when no TTL is configured
	DefaultIdempotencyKeyTTL = 24 * time.Hour
	// DefaultIdempotencyPendingTTL bounds how long a claim outlives a crashed request
	DefaultIdempotencyPendingTTL = 2 * time.Minute
)

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Repo repository.IdempotencyRepository
	TTL  time.Duration
	// PendingTTL is the expiry of a key while its request is in flight
	PendingTTL time.Duration
	// Required rejects POST requests that carry no key
	Required bool
}

// responseWriter wraps gin.ResponseWriter to capture the response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a request already served under
// the same key within the company. The key is claimed before the handler
// runs, so a concurrent retry gets a 409 instead of running it twice. Only
// successful responses are kept; any other outcome releases the key so the
// request can be retried with it.
func Idempotency(config IdempotencyConfig) gin.HandlerFunc {
	ttl := config.TTL
	if ttl <= 0 {
		ttl = DefaultIdempotencyKeyTTL
	}
	pendingTTL := config.PendingTTL
	if pendingTTL <= 0 {
		pendingTTL = DefaultIdempotencyPendingTTL
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			if config.Required && c.Request.Method == http.MethodPost {
				response.BadRequest(c, "Idempotency-Key header is required for this request")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		companyID := GetCompanyID(c)
		if companyID == uuid.Nil {
			response.Unauthorized(c, "User not authenticated")
			c.Abort()
			return
		}
		userID, _ := c.Get("user_id")
		uid, _ := userID.(uuid.UUID)

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.BadRequest(c, "Could not read request body")
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum := sha256.Sum256(body)
		requestHash := hex.EncodeToString(sum[:])
		endpoint := c.Request.Method + " " + c.FullPath()

		ctx := c.Request.Context()
		ikey := &entity.IdempotencyKey{
			Key:         idempotencyKey,
			CompanyID:   companyID,
			UserID:      uid,
			Endpoint:    endpoint,
			RequestHash: requestHash,
			ExpiresAt:   time.Now().Add(pendingTTL),
		}
		claimed, err := config.Repo.Claim(ctx, ikey)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if !claimed {
			replay(c, config.Repo, ikey)
			return
		}

		blw := &responseWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// the client may be gone; the key must still be settled
		ctx = context.WithoutCancel(ctx)
		log := logger.FromContext(ctx).With(zap.String("key", idempotencyKey))

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			if err := config.Repo.Release(ctx, idempotencyKey, companyID); err != nil {
				log.Warn("Failed to release idempotency key", zap.Error(err))
			}
			return
		}

		ikey.ResponseCode = status
		ikey.ResponseBody = blw.body.String()
		ikey.ExpiresAt = time.Now().Add(ttl)
		if err := config.Repo.Complete(ctx, ikey); err != nil {
			log.Warn("Failed to store idempotency key", zap.Error(err))
		}
	}
}

// replay answers a request whose key is already held by another request
func replay(c *gin.Context, repo repository.IdempotencyRepository, claim *entity.IdempotencyKey) {
	defer c.Abort()

	existing, err := repo.GetByKey(c.Request.Context(), claim.Key, claim.CompanyID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if existing == nil || existing.IsPending() {
		response.ErrorWithCode(c, http.StatusConflict, "A request with this Idempotency-Key is still being processed")
		return
	}
	if existing.Endpoint != claim.Endpoint || (existing.RequestHash != "" && existing.RequestHash != claim.RequestHash) {
		response.ErrorWithCode(c, http.StatusUnprocessableEntity, "Idempotency-Key was already used for a different request")
		return
	}

	c.Header("X-Idempotency-Replayed", "true")
	c.Data(existing.ResponseCode, "application/json; charset=utf-8", []byte(existing.ResponseBody))
}
