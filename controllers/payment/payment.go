package paymentControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/middleware"
	"github.com/rakibwebdev23/Bistro-Restaurant-Server/models"
)

// minorUnits converts a decimal price to integer cents, truncating toward
// zero the way Stripe amounts are quoted.
func minorUnits(price float64) int64 {
	return int64(price * 100)
}

// POST /create-payment-intent (authenticated)
func CreatePaymentIntent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Price float64 `json:"price" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		params := &stripe.PaymentIntentParams{
			Amount:             stripe.Int64(minorUnits(input.Price)),
			Currency:           stripe.String(string(stripe.CurrencyUSD)),
			PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		}

		intent, err := paymentintent.New(params)
		if err != nil {
			logrus.WithError(err).Error("stripe payment intent failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
	}
}

// GET /payments/:email (authenticated, self only)
func GetPayments(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email != middleware.AuthenticatedEmail(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		cursor, err := store.Payments.Find(c.Request.Context(), bson.M{"email": email})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}

		var payments []models.Payment
		if err := cursor.All(c.Request.Context(), &payments); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}

		c.JSON(http.StatusOK, payments)
	}
}

// POST /payments
//
// Finalization is two store calls in sequence, not a transaction: persist
// the payment, then purge the cart entries it covers. A crash in between
// leaves the payment recorded with the cart intact; nothing repairs that
// window.
func CreatePayment(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payment models.Payment
		if err := c.ShouldBindJSON(&payment); err != nil || payment.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment payload"})
			return
		}
		if payment.Date.IsZero() {
			payment.Date = time.Now()
		}

		paymentResult, err := store.Payments.InsertOne(c.Request.Context(), payment)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
			return
		}

		filter := bson.M{"_id": bson.M{"$in": payment.CartItemIDs}}
		deleteResult, err := store.Carts.DeleteMany(c.Request.Context(), filter)
		if err != nil {
			logrus.WithError(err).WithField("email", payment.Email).
				Error("cart purge failed after payment insert")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"paymentResult": paymentResult,
			"deleteResult":  deleteResult,
		})
	}
}
