// admin.go - privacy-conscious page-view counting and the admin area
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	pageKey         = "portfolio_page"
	adminCookie     = "admin_token"
	adminCookieAge  = 3600 * 24
	recordTimeout   = 2 * time.Second
	recentVisitsMax = 200
	pruneInterval   = 24 * time.Hour
)

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// visitTracker records page views with salted, truncated IP hashes. The salt
// lives only in memory, so hashes cannot be linked across restarts. Visits
// older than retention are pruned; a zero retention keeps everything.
type visitTracker struct {
	store     *Store
	salt      string
	retention time.Duration
	now       func() time.Time
}

func newVisitTracker(store *Store, retention time.Duration) (*visitTracker, error) {
	salt, err := generateToken()
	if err != nil {
		return nil, err
	}
	return &visitTracker{store: store, salt: salt, retention: retention, now: time.Now}, nil
}

func (t *visitTracker) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + t.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// middleware records a visit after a portfolio page was rendered
// successfully. Requests carrying DNT: 1 are never recorded.
// prune removes visits that fell out of the retention window.
func (t *visitTracker) prune(ctx context.Context) (int64, error) {
	if t.retention <= 0 {
		return 0, nil
	}
	n, err := t.store.Prune(ctx, t.now().Add(-t.retention))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("privacy cleanup removed old visits", "count", n, "retention", t.retention)
	}
	return n, nil
}

// pruneEvery prunes now and then once per interval until ctx is done.
func (t *visitTracker) pruneEvery(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := t.prune(ctx); err != nil && ctx.Err() == nil {
			slog.Error("error cleaning up old visits", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (t *visitTracker) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		page := c.GetString(pageKey)
		if page == "" || c.Writer.Status() >= http.StatusBadRequest || c.GetHeader("DNT") == "1" {
			return
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), recordTimeout)
		defer cancel()
		err := t.store.RecordVisit(ctx, Visit{
			HashedIP:  t.hashIP(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Page:      page,
		})
		if err != nil {
			slog.Error("error recording visit", "error", err, "page", page)
		}
	}
}

type admin struct {
	store        *Store
	tracker      *visitTracker
	username     string
	passwordHash string
	token        string
	now          func() time.Time
}

func newAdmin(cfg *Config, store *Store, tracker *visitTracker) (*admin, error) {
	hash, err := hashPassword(cfg.AdminPassword, nil)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	return &admin{
		store:        store,
		tracker:      tracker,
		username:     cfg.AdminUsername,
		passwordHash: hash,
		token:        token,
		now:          time.Now,
	}, nil
}

func (a *admin) authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK, err := verifyPassword(password, a.passwordHash)
	if err != nil {
		slog.Error("verifying admin password", "error", err)
		return false
	}
	return userOK && passOK
}

func (a *admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *admin) routes(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		if a.authenticate(c.PostForm("username"), c.PostForm("password")) {
			c.SetCookie(adminCookie, a.token, adminCookieAge, "/admin", "", c.Request.TLS != nil, true)
			slog.Info("admin login successful", "client", a.tracker.hashIP(c.ClientIP()))
			c.Redirect(http.StatusFound, "/admin/dashboard")
			return
		}
		slog.Warn("failed admin login attempt", "client", a.tracker.hashIP(c.ClientIP()))
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", c.Request.TLS != nil, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	group := r.Group("/admin")
	group.Use(a.authMiddleware())

	group.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context(), a.now())
		if err != nil {
			slog.Error("error loading admin stats", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"stats": stats})
	})

	group.GET("/visits", func(c *gin.Context) {
		visits, err := a.store.Recent(c.Request.Context(), recentVisitsMax)
		if err != nil {
			slog.Error("error loading visits", "error", err)
			c.HTML(http.StatusInternalServerError, "admin-error.html", gin.H{
				"error": "Failed to load visits",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-visits.html", gin.H{"visits": visits})
	})

	group.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context(), a.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	group.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context(), a.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		c.JSON(http.StatusOK, stats)
	})

	group.POST("/privacy/prune", func(c *gin.Context) {
		n, err := a.tracker.prune(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": n})
	})
}
