package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roulettetracker/backend/internal/predictor"
)

// MarksRequest is the timing payload posted by the tracker frontend.
// wheel_marks, ball_marks and mode describe how the marks were captured;
// the physics core does not use them.
type MarksRequest struct {
	WheelTimes []float64 `json:"wheel_times" binding:"required"`
	BallTimes  []float64 `json:"ball_times" binding:"required"`
	WheelMarks int       `json:"wheel_marks"`
	BallMarks  int       `json:"ball_marks"`
	Mode       string    `json:"mode"`
}

// MarksResponse carries one predicted pocket per wheel direction.
type MarksResponse struct {
	LeftPrediction  int `json:"left_prediction"`
	RightPrediction int `json:"right_prediction"`
}

// PredictMarks handles prediction requests from the tracker frontend
func PredictMarks() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MarksRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request. wheel_times and ball_times arrays required.",
			})
			return
		}
		if req.Mode == "" {
			req.Mode = "3x3"
		}

		left, right, err := predictor.ComputePredictions(req.WheelTimes, req.BallTimes)
		if err != nil {
			if errors.Is(err, predictor.ErrInsufficientMarks) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			log.Printf("[ERROR] PredictMarks - prediction failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed"})
			return
		}

		log.Printf("[INFO] PredictMarks - wheel_marks=%d ball_marks=%d mode=%s left=%d right=%d",
			req.WheelMarks, req.BallMarks, req.Mode, left, right)

		c.JSON(http.StatusOK, MarksResponse{
			LeftPrediction:  left,
			RightPrediction: right,
		})
	}
}
