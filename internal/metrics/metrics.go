package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	signupAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_signup_attempts_total",
		Help: "Number of signup attempts grouped by status.",
	}, []string{"status"})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	postOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_post_operations_total",
		Help: "Post mutations grouped by operation and status.",
	}, []string{"op", "status"})

	uploadRejects = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkup_upload_rejections_total",
		Help: "Rejected image uploads grouped by reason.",
	}, []string{"reason"})
)

// IncSignup increments the signup counter.
func IncSignup(status string) {
	signupAttempts.WithLabelValues(status).Inc()
}

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncPostOp increments the post-operation counter.
func IncPostOp(op, status string) {
	postOps.WithLabelValues(op, status).Inc()
}

// IncUploadReject increments the upload-rejection counter.
func IncUploadReject(reason string) {
	uploadRejects.WithLabelValues(reason).Inc()
}
