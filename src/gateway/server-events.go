package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/events"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/gateway/request"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/gateway/response"
	. "github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/logger"
	"github.com/bharathkumaracharips/BookMyBlock-sub000/src/utils/model"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgtype"
)

func (self *Server) onListEvents(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit <= 0 || limit > 1000 {
		limit = 100
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	out, err := self.store.ListEvents(c.Request.Context(), c.Query("application_id"), limit, offset)
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to list events")
		self.monitor.GetReport().Gateway.Errors.RequestFailures.Inc()
		return
	}

	self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
	c.JSON(http.StatusOK, response.Ok(response.EventsToResponse(out)))
}

func (self *Server) onGetEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Invalid event id")
		return
	}

	event, err := self.store.GetEvent(c.Request.Context(), uint(id))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, events.ErrEventNotFound) {
			status = http.StatusNotFound
		}
		LOGE(c, err, status).Error("Failed to get event")
		return
	}

	self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
	c.JSON(http.StatusOK, response.Ok(response.EventToResponse(event)))
}

func (self *Server) onCreateEvent(c *gin.Context) {
	event, ok := self.bindEvent(c)
	if !ok {
		return
	}

	err := self.store.CreateEvent(c.Request.Context(), event)
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to create event")
		self.monitor.GetReport().Gateway.Errors.RequestFailures.Inc()
		return
	}

	self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
	c.JSON(http.StatusCreated, response.Ok(response.EventToResponse(event)))
}

func (self *Server) onUpdateEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Invalid event id")
		return
	}

	event, ok := self.bindEvent(c)
	if !ok {
		return
	}
	event.ID = uint(id)

	err = self.store.UpdateEvent(c.Request.Context(), event)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, events.ErrEventNotFound) {
			status = http.StatusNotFound
		}
		LOGE(c, err, status).Error("Failed to update event")
		return
	}

	self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
	c.JSON(http.StatusOK, response.Ok(response.EventToResponse(event)))
}

func (self *Server) onDeleteEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Invalid event id")
		return
	}

	err = self.store.DeleteEvent(c.Request.Context(), uint(id))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, events.ErrEventNotFound) {
			status = http.StatusNotFound
		}
		LOGE(c, err, status).Error("Failed to delete event")
		return
	}

	self.monitor.GetReport().Gateway.State.RequestsServed.Inc()
	c.JSON(http.StatusOK, response.OkMessage("event deactivated"))
}

func (self *Server) bindEvent(c *gin.Context) (event *model.Event, ok bool) {
	var in request.SaveEvent
	err := c.ShouldBindJSON(&in)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to parse request")
		return nil, false
	}

	showtimes, err := json.Marshal(in.Showtimes)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to encode showtimes")
		return nil, false
	}

	event = &model.Event{
		Title:            in.Title,
		Description:      in.Description,
		VenueName:        in.VenueName,
		VenueCity:        in.VenueCity,
		ApplicationId:    in.ApplicationId,
		PosterHash:       in.PosterHash,
		TicketPriceCents: in.TicketPriceCents,
		TotalSeats:       in.TotalSeats,
		IsActive:         true,
		Showtimes:        pgtype.JSONB{Bytes: showtimes, Status: pgtype.Present},
	}
	return event, true
}
