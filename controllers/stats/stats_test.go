package statsControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/rakibwebdev23/Bistro-Restaurant-Server/database"
)

func TestOrderStatsPipelineShape(t *testing.T) {
	pipeline := orderStatsPipeline()
	require.Len(t, pipeline, 4)

	assert.Equal(t, "$unwind", pipeline[0][0].Key)
	assert.Equal(t, "$menuItemIds", pipeline[0][0].Value)

	assert.Equal(t, "$lookup", pipeline[1][0].Key)
	lookup, ok := pipeline[1][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{
		{Key: "from", Value: "menu"},
		{Key: "localField", Value: "menuItemIds"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "menuItems"},
	}, lookup)

	assert.Equal(t, "$unwind", pipeline[2][0].Key)

	assert.Equal(t, "$group", pipeline[3][0].Key)
	group, ok := pipeline[3][0].Value.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "$menuItems.category", group[0].Value)
}

func runStatsHandler(t *testing.T, handler gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	handler(c)
	return w
}

func TestOrderStatsGrouping(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("two categories", func(mt *mtest.T) {
		store := database.NewStoreWithDatabase(mt.DB)
		ns := mt.DB.Name() + ".payments"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "Dessert"}, {Key: "quantity", Value: 2}, {Key: "revenue", Value: 12.0}},
			bson.D{{Key: "_id", Value: "Drinks"}, {Key: "quantity", Value: 1}, {Key: "revenue", Value: 3.0}},
		))

		w := runStatsHandler(mt.T, OrderStats(store), "/order-stats")

		require.Equal(mt, http.StatusOK, w.Code, w.Body.String())

		var stats []CategoryStat
		require.NoError(mt, json.Unmarshal(w.Body.Bytes(), &stats))
		require.Len(mt, stats, 2)

		byCategory := map[string]CategoryStat{}
		for _, s := range stats {
			byCategory[s.Category] = s
		}
		assert.Equal(mt, int64(2), byCategory["Dessert"].Quantity)
		assert.Equal(mt, 12.0, byCategory["Dessert"].Revenue)
		assert.Equal(mt, int64(1), byCategory["Drinks"].Quantity)
		assert.Equal(mt, 3.0, byCategory["Drinks"].Revenue)
	})
}

func TestAdminStats(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("counts and revenue", func(mt *mtest.T) {
		store := database.NewStoreWithDatabase(mt.DB)
		ns := mt.DB.Name() + ".payments"

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 5}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 10}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: nil}, {Key: "totalRevenue", Value: 60.0}},
			),
		)

		w := runStatsHandler(mt.T, AdminStats(store), "/admin-stats")

		require.Equal(mt, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(mt, `{"users":5,"menuItems":10,"orders":3,"revenue":60}`, w.Body.String())
	})

	mt.Run("no payments means zero revenue", func(mt *mtest.T) {
		store := database.NewStoreWithDatabase(mt.DB)
		ns := mt.DB.Name() + ".payments"

		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 5}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 10}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch),
		)

		w := runStatsHandler(mt.T, AdminStats(store), "/admin-stats")

		require.Equal(mt, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(mt, `{"users":5,"menuItems":10,"orders":0,"revenue":0}`, w.Body.String())
	})
}
