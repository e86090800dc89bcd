package controllers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"fleet_manager/internal/apperr"
	"fleet_manager/internal/export"
	"fleet_manager/internal/listing"
)

// respondError writes a domain error as {"error": message}. Anything that is
// not a domain error is logged and reported as a 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), gin.H{"error": appErr.Message})
		return
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
	}).Error("Unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// bindJSON decodes the request body into dst. Decoding failures are
// validation errors.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return apperr.Validation("Invalid request body format: " + err.Error())
	}
	return nil
}

// renderList shapes items by the request query and writes the page.
func renderList[T listing.Record](c *gin.Context, items []T) {
	q, err := listing.ParseQuery(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	page, err := listing.Build(items, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func respondDeleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// sendPDF renders doc fully before writing so a render failure can still
// produce an error response.
func sendPDF(c *gin.Context, resource string, doc export.Document) {
	var buf bytes.Buffer
	if err := export.PDF(&buf, doc); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline; filename="+resource+"-list.pdf")
	c.Data(http.StatusOK, export.PDFContentType, buf.Bytes())
}

func sendXLSX(c *gin.Context, doc export.Document) {
	var buf bytes.Buffer
	if err := export.XLSX(&buf, doc); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=Report.xlsx")
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
