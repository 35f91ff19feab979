/*
 * movie-night is a Discord bot for browsing, discussing and tracking movies together.
 * Copyright (C) 2025  Lucas Duport
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// setupInternalAPI wires the endpoints used by dashboards and ops tooling.
// Everything is read-only except the bully target.
func (c *Config) setupInternalAPI(r *gin.Engine) {
	utils.InfoLog("Setting up internal API endpoints")

	api := r.Group("/api/internal")
	api.Use(c.apiKeyAuth())
	api.Use(gin.Recovery())
	api.Use(func(ctx *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				utils.ErrorLog("API PANIC RECOVERED: %v\nStack trace: %s", err, debug.Stack())
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, types.APIResponse{
					Success: false,
					Error:   fmt.Sprintf("Internal server error: %v", err),
				})
			}
		}()
		ctx.Next()
	})

	api.GET("/watchlist/:userid", c.getUserWatchlist)
	api.GET("/parties", c.getActiveParties)
	api.GET("/links", c.getAccountLinks)

	api.GET("/bully", c.getBullyStatus)
	api.POST("/bully/:userid", c.setBullyTarget)
	api.DELETE("/bully", c.clearBullyTarget)

	api.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, types.APIResponse{
			Success: true,
			Message: "API is running",
			Data: map[string]interface{}{
				"time":         time.Now().String(),
				"db_connected": c.db != nil && c.db.IsInitialized(),
			},
		})
	})

	utils.InfoLog("Internal API routes configured successfully")
}

// getUserWatchlist returns both of a user's lists.
func (c *Config) getUserWatchlist(ctx *gin.Context) {
	userID := ctx.Param("userid")

	watched, err := c.db.GetUserWatchlist(userID, types.StatusWatched)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, types.APIResponse{Success: false, Error: utils.PrintErrorAndReturn(err).Error()})
		return
	}
	wanted, err := c.db.GetUserWatchlist(userID, types.StatusWantToWatch)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, types.APIResponse{Success: false, Error: utils.PrintErrorAndReturn(err).Error()})
		return
	}

	ctx.JSON(http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"watched":       watched,
			"want_to_watch": wanted,
		},
	})
}

// getActiveParties lists watch parties that have not happened yet.
func (c *Config) getActiveParties(ctx *gin.Context) {
	parties, err := c.db.ActiveParties()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, types.APIResponse{Success: false, Error: utils.PrintErrorAndReturn(err).Error()})
		return
	}
	ctx.JSON(http.StatusOK, types.APIResponse{Success: true, Data: parties})
}

// getAccountLinks lists Discord-to-Overseerr mappings.
func (c *Config) getAccountLinks(ctx *gin.Context) {
	links, err := c.db.ListAccountLinks()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, types.APIResponse{Success: false, Error: utils.PrintErrorAndReturn(err).Error()})
		return
	}
	ctx.JSON(http.StatusOK, types.APIResponse{Success: true, Data: links})
}

// getBullyStatus reports the gag target and cooldown.
func (c *Config) getBullyStatus(ctx *gin.Context) {
	target := c.tracker.Target()
	strikes, remaining := c.tracker.StatusForTarget()
	ctx.JSON(http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"target":             target,
			"strikes":            strikes,
			"cooldown_remaining": remaining.String(),
		},
	})
}

// setBullyTarget designates a target remotely.
func (c *Config) setBullyTarget(ctx *gin.Context) {
	userID := ctx.Param("userid")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, types.APIResponse{Success: false, Error: "user ID required"})
		return
	}
	c.tracker.SetTarget(userID)
	ctx.JSON(http.StatusOK, types.APIResponse{Success: true, Message: "Bully target set"})
}

// clearBullyTarget disables the gag.
func (c *Config) clearBullyTarget(ctx *gin.Context) {
	c.tracker.SetTarget("")
	ctx.JSON(http.StatusOK, types.APIResponse{Success: true, Message: "Bully target cleared"})
}
