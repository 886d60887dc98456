package httpserver

import (
	"strconv"

	"biltone-supplies/internal/domain"
	"github.com/gin-gonic/gin"
)

// formatKES renders a minor-unit amount as "KES 5,800" for display fields.
// The raw integer stays in the payload; this is presentation only.
func formatKES(cents int64) string {
	digits := strconv.FormatInt(cents, 10)
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}
	out := "KES " + string(grouped)
	if neg {
		out = "KES -" + string(grouped)
	}
	return out
}

func cartResponse(cart domain.Cart) gin.H {
	lines := cart.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return gin.H{
		"sessionId":    cart.SessionID,
		"lines":        lines,
		"totalCents":   cart.TotalCents(),
		"totalDisplay": formatKES(cart.TotalCents()),
		"itemCount":    cart.ItemCount(),
	}
}
