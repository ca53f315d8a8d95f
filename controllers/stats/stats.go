package statsControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
)

// CategoryStat is one group of the per-category order rollup.
type CategoryStat struct {
	Category string  `bson:"_id" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}

func revenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

// orderStatsPipeline expands each payment's menu item ids, joins them
// against the menu collection and groups by category. Categories nobody
// ordered never appear; group order is whatever the server returns.
func orderStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "menu"},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
	}
}

// GET /admin-stats (admin)
//
// Counts are estimates from collection metadata, cheap but approximate
// under concurrent writes. Revenue sums the price field of every payment.
func AdminStats(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		users, err := store.Users.EstimatedDocumentCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		menuItems, err := store.Menu.EstimatedDocumentCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		orders, err := store.Payments.EstimatedDocumentCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		cursor, err := store.Payments.Aggregate(ctx, revenuePipeline())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		var totals []struct {
			TotalRevenue float64 `bson:"totalRevenue"`
		}
		if err := cursor.All(ctx, &totals); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		var revenue float64
		if len(totals) > 0 {
			revenue = totals[0].TotalRevenue
		}

		c.JSON(http.StatusOK, gin.H{
			"users":     users,
			"menuItems": menuItems,
			"orders":    orders,
			"revenue":   revenue,
		})
	}
}

// GET /order-stats
func OrderStats(store *database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		cursor, err := store.Payments.Aggregate(ctx, orderStatsPipeline())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order stats"})
			return
		}

		var stats []CategoryStat
		if err := cursor.All(ctx, &stats); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order stats"})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}
