package service_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/healthlog/internal/catalog"
	errorvalues "github.com/limbo/healthlog/internal/error_values"
	"github.com/limbo/healthlog/internal/repository"
	"github.com/limbo/healthlog/internal/repository/mocks"
	"github.com/limbo/healthlog/internal/service"
	"github.com/limbo/healthlog/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var serviceNow = time.Date(2024, time.November, 15, 12, 0, 0, 0, time.UTC)

func validRequest() service.ActivityRequest {
	return service.ActivityRequest{
		ActivityType: "Water",
		Date:         serviceNow.Add(-time.Hour),
		Value:        2.5,
		Notes:        "after run",
		Intensity:    3,
	}
}

func TestAddActivity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepositoryI(ctrl)
	serv := service.NewActivityServiceWithClock(repo, catalog.New(), func() time.Time { return serviceNow })

	stored := func(req service.ActivityRequest) entity.ActivityRecord {
		return entity.ActivityRecord{
			ID:           1,
			ActivityType: req.ActivityType,
			Date:         req.Date,
			Value:        req.Value,
			Notes:        req.Notes,
			Intensity:    req.Intensity,
			CreatedAt:    serviceNow,
		}
	}
	tooLong := 25 * time.Hour
	okDuration := 40 * time.Minute

	testCases := []struct {
		Desc         string
		Request      func() service.ActivityRequest
		Error        error
		Warnings     int
		MockPrepFunc func(req service.ActivityRequest)
	}{
		{
			Desc:    "success",
			Request: validRequest,
			MockPrepFunc: func(req service.ActivityRequest) {
				repo.EXPECT().Add(gomock.Any()).Return(1)
				repo.EXPECT().GetByID(1).Return(stored(req), true)
			},
		},
		{
			Desc: "success with duration and warning",
			Request: func() service.ActivityRequest {
				req := validRequest()
				req.Value = 6
				req.Duration = &okDuration
				return req
			},
			Warnings: 1,
			MockPrepFunc: func(req service.ActivityRequest) {
				repo.EXPECT().Add(gomock.Any()).Return(1)
				repo.EXPECT().GetByID(1).Return(stored(req), true)
			},
		},
		{
			Desc: "zero value below range warns twice",
			Request: func() service.ActivityRequest {
				req := validRequest()
				req.Value = 0
				return req
			},
			Warnings: 2,
			MockPrepFunc: func(req service.ActivityRequest) {
				repo.EXPECT().Add(gomock.Any()).Return(1)
				repo.EXPECT().GetByID(1).Return(stored(req), true)
			},
		},
		{
			Desc: "blank type",
			Request: func() service.ActivityRequest {
				req := validRequest()
				req.ActivityType = "   "
				return req
			},
			Error:        errorvalues.ErrInvalidActivity,
			MockPrepFunc: func(service.ActivityRequest) {},
		},
		{
			Desc: "negative value",
			Request: func() service.ActivityRequest {
				req := validRequest()
				req.Value = -1
				return req
			},
			Error:        errorvalues.ErrInvalidActivity,
			MockPrepFunc: func(service.ActivityRequest) {},
		},
		{
			Desc: "intensity out of scale",
			Request: func() service.ActivityRequest {
				req := validRequest()
				req.Intensity = 11
				return req
			},
			Error:        errorvalues.ErrInvalidActivity,
			MockPrepFunc: func(service.ActivityRequest) {},
		},
		{
			Desc: "duration longer than a day",
			Request: func() service.ActivityRequest {
				req := validRequest()
				req.Duration = &tooLong
				return req
			},
			Error:        errorvalues.ErrInvalidActivity,
			MockPrepFunc: func(service.ActivityRequest) {},
		},
		{
			Desc: "date in the future",
			Request: func() service.ActivityRequest {
				req := validRequest()
				req.Date = serviceNow.Add(25 * time.Hour)
				return req
			},
			Error:        errorvalues.ErrDateOutOfRange,
			MockPrepFunc: func(service.ActivityRequest) {},
		},
		{
			Desc: "date too old",
			Request: func() service.ActivityRequest {
				req := validRequest()
				req.Date = serviceNow.AddDate(-11, 0, 0)
				return req
			},
			Error:        errorvalues.ErrDateOutOfRange,
			MockPrepFunc: func(service.ActivityRequest) {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			req := tc.Request()
			tc.MockPrepFunc(req)
			res, err := serv.AddActivity(req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, res.Activity.ID)
			assert.Equal(t, "liters", res.Activity.Unit)
			assert.Len(t, res.Warnings, tc.Warnings)
		})
	}
}

func TestUpdateActivity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepositoryI(ctrl)
	serv := service.NewActivityServiceWithClock(repo, catalog.New(), func() time.Time { return serviceNow })

	t.Run("unknown id", func(t *testing.T) {
		repo.EXPECT().Update(7, gomock.Any()).Return(false)
		_, err := serv.UpdateActivity(7, validRequest())
		assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
	})
	t.Run("invalid request never reaches repository", func(t *testing.T) {
		req := validRequest()
		req.Notes = string(make([]byte, 501))
		_, err := serv.UpdateActivity(7, req)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidActivity)
	})
	t.Run("success", func(t *testing.T) {
		req := validRequest()
		updated := serviceNow
		repo.EXPECT().Update(7, entity.ActivityRecord{
			ActivityType: req.ActivityType,
			Date:         req.Date,
			Value:        req.Value,
			Notes:        req.Notes,
			Intensity:    req.Intensity,
		}).Return(true)
		repo.EXPECT().GetByID(7).Return(entity.ActivityRecord{
			ID:           7,
			ActivityType: req.ActivityType,
			Date:         req.Date,
			Value:        req.Value,
			Intensity:    req.Intensity,
			UpdatedAt:    &updated,
		}, true)
		res, err := serv.UpdateActivity(7, req)
		require.NoError(t, err)
		assert.Equal(t, 7, res.Activity.ID)
		assert.True(t, res.Activity.WithinRecommendation)
		assert.Empty(t, res.Warnings)
	})
}

func TestDeleteActivity(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepositoryI(ctrl)
	serv := service.NewActivityService(repo, catalog.New())

	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			MockPrepFunc: func() {
				repo.EXPECT().Delete(3).Return(true)
			},
		},
		{
			Desc:  "error activity not found",
			Error: errorvalues.ErrActivityNotFound,
			MockPrepFunc: func() {
				repo.EXPECT().Delete(3).Return(false)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			assert.ErrorIs(t, serv.DeleteActivity(3), tc.Error)
		})
	}
}

func TestQueryGuards(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActivityRepositoryI(ctrl)
	serv := service.NewActivityService(repo, catalog.New())

	_, err := serv.ActivitiesByDateRange(serviceNow, serviceNow.Add(-time.Second))
	assert.ErrorIs(t, err, errorvalues.ErrInvalidDateRange)

	_, err = serv.SearchActivities("  ")
	assert.ErrorIs(t, err, errorvalues.ErrEmptySearchTerm)

	for _, count := range []int{0, -1, service.MaxRecentCount + 1} {
		_, err = serv.RecentActivities(count)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidCount, "count %d", count)
	}

	repo.EXPECT().GetByID(10).Return(entity.ActivityRecord{}, false)
	_, err = serv.GetActivity(10)
	assert.ErrorIs(t, err, errorvalues.ErrActivityNotFound)
}

func TestActivityViews(t *testing.T) {
	t.Parallel()
	types := catalog.New()
	repo := repository.NewActivityRepo(types)
	serv := service.NewActivityServiceWithClock(repo, types, func() time.Time { return serviceNow })

	for _, req := range []service.ActivityRequest{
		{ActivityType: "Sleep", Date: serviceNow.Add(-10 * time.Hour), Value: 7.5, Intensity: 2},
		{ActivityType: "Sleep", Date: serviceNow.Add(-34 * time.Hour), Value: 4, Intensity: 2},
		{ActivityType: "corrida matinal", Date: serviceNow.Add(-2 * time.Hour), Value: 35, Intensity: 7, Notes: "Parque"},
	} {
		_, err := serv.AddActivity(req)
		require.NoError(t, err)
	}

	all := serv.ListActivities()
	require.Len(t, all, 3)
	assert.Equal(t, "hours", all[0].Unit)
	assert.True(t, all[0].WithinRecommendation)
	assert.False(t, all[1].WithinRecommendation)
	assert.Equal(t, "minutes", all[2].Unit)

	recent, err := serv.RecentActivities(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "corrida matinal", recent[0].ActivityType)

	found, err := serv.SearchActivities("parque")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	assert.Len(t, serv.ActivitiesByType("sleep"), 2)
	assert.Len(t, serv.ActivitiesByCategory(entity.CategoryExercise), 1)

	ranged, err := serv.ActivitiesByDateRange(serviceNow.Add(-12*time.Hour), serviceNow)
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	view, err := serv.GetActivity(1)
	require.NoError(t, err)
	assert.Equal(t, 7.5, view.Value)

	assert.Equal(t, 3, serv.Count())
	assert.Contains(t, serv.ActivityTypes(), "corrida matinal")
	assert.Equal(t, entity.CategoryExercise, serv.TypeInfo("corrida matinal").Category)
	assert.Len(t, serv.PredefinedTypes(), len(types.PredefinedNames()))
}
