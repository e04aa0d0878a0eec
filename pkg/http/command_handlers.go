package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"

	"fleetpanel.dev/device-console-service/pkg/console"
	"fleetpanel.dev/device-console-service/pkg/models"
)

type CommandRequest struct {
	Command string         `json:"command"`
	Params  map[string]any `json:"params"`
}

var commandRequestSchema = z.Struct(z.Shape{
	"Command": z.String().Required(),
})

func (rs *RestfulServer) PostCommand(c *gin.Context) {
	var req CommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := commandRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	var userID uint
	if user := currentUser(c); user != nil {
		userID = user.ID
	}

	cmd, err := rs.Console.Command.Issue(c.Param("device_id"), req.Command, req.Params, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cmd)
}

func (rs *RestfulServer) GetCommands(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(console.DefaultCommandLimit)))
	if err != nil || limit <= 0 {
		limit = console.DefaultCommandLimit
	}

	commands, err := rs.Console.Command.History(c.Param("device_id"), limit)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, commands)
}

type CommandStatusRequest struct {
	Status   string  `json:"status"`
	Response *string `json:"response"`
}

var commandStatusRequestSchema = z.Struct(z.Shape{
	"Status": z.String().OneOf([]string{
		string(models.CommandStatusPending),
		string(models.CommandStatusSent),
		string(models.CommandStatusCompleted),
		string(models.CommandStatusFailed),
	}).Required(),
})

func (rs *RestfulServer) PostCommandResponse(c *gin.Context) {
	commandID, err := strconv.ParseUint(c.Param("command_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid command id"})
		return
	}

	var req CommandStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := commandStatusRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	if err := rs.Console.Command.ReportStatus(uint(commandID), models.CommandStatus(req.Status), req.Response); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

type LimiterRequest struct {
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := limiterRequestSchema.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	rs.SetLimiter(c.Param("device_id"), req.Rate, req.Burst)

	c.Status(http.StatusOK)
}
