package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nidhisakhi/backend/internal/domain/pricing"
)

type MetaHandler struct {
	env     string
	version string
}

func NewMetaHandler(env, version string) *MetaHandler {
	return &MetaHandler{env: env, version: version}
}

func (h *MetaHandler) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":                  "NidhiSakhi Backend",
		"version":               h.version,
		"env":                   h.env,
		"loan_types":            pricing.LoanTypes,
		"eligibility_threshold": pricing.EligibilityThreshold,
	})
}
