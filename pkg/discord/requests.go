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

package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/overseerr"
	"github.com/lucasduport/movie-night/pkg/types"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// handleRequestButton opens the quality modal for the post's movie, after
// making sure the presser is linked to an Overseerr account.
func (b *Bot) handleRequestButton(s *discordgo.Session, i *discordgo.InteractionCreate, movieID string) {
	if !b.cfg.OverseerrConfigured() {
		b.replyEphemeral(s, i, b.msg.NotConfigured)
		return
	}

	link, err := b.db.GetAccountLink(b.interactionUserID(i))
	if err != nil {
		utils.ErrorLog("Account link lookup failed: %v", err)
		b.replyEphemeral(s, i, b.msg.GenericError)
		return
	}
	if link == nil {
		b.replyEphemeral(s, i, b.msg.NotLinked)
		return
	}

	title, _ := movieFromMessage(i.Message, b.msg)
	b.openQualityModal(s, i, "request_modal_"+movieID, title)
}

func (b *Bot) openQualityModal(s *discordgo.Session, i *discordgo.InteractionCreate, customID, title string) {
	modalTitle := b.msg.ModalTitle
	if title != "" {
		modalTitle = utils.TrimTo(b.msg.ModalTitleWithMovie(title), 45)
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customID,
			Title:    modalTitle,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    "quality",
						Label:       b.msg.QualityLabel,
						Style:       discordgo.TextInputShort,
						Placeholder: b.msg.QualityPlaceholder,
						Required:    false,
						MaxLength:   3,
					},
				}},
			},
		},
	})
	if err != nil {
		utils.ErrorLog("Failed to open request modal: %v", err)
	}
}

// handleModalSubmit files the Overseerr request with the chosen quality.
func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	if !strings.HasPrefix(data.CustomID, "request_modal_") && !strings.HasPrefix(data.CustomID, "quick_request_modal_") {
		return
	}
	movieID := strings.TrimPrefix(strings.TrimPrefix(data.CustomID, "quick_"), "request_modal_")

	tmdbID, err := strconv.Atoi(movieID)
	if err != nil {
		utils.ErrorLog("Bad movie ID in modal %s", data.CustomID)
		b.replyEphemeral(s, i, b.msg.GenericError)
		return
	}

	is4k := false
	if row, ok := data.Components[0].(*discordgo.ActionsRow); ok {
		if input, ok := row.Components[0].(*discordgo.TextInput); ok {
			is4k = strings.EqualFold(strings.TrimSpace(input.Value), "4k")
		}
	}

	link, err := b.db.GetAccountLink(b.interactionUserID(i))
	if err != nil || link == nil {
		b.replyEphemeral(s, i, b.msg.NotLinked)
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		utils.ErrorLog("Failed to defer modal response: %v", err)
		return
	}

	res, err := b.osr.RequestMovie(tmdbID, link.OverseerrUserID, is4k)
	if err != nil {
		utils.ErrorLog("Overseerr request failed: %v", err)
		b.editDeferred(s, i, b.msg.RequestFailed(err.Error()))
		return
	}
	if !res.Success {
		b.editDeferred(s, i, b.msg.RequestFailed(res.Error))
		return
	}

	title := movieID
	if details, err := b.tmdb.GetMovieDetails(tmdbID); err == nil {
		title = details.Title
	}
	utils.InfoLog("Overseerr request %d filed by %s for movie %s", res.RequestID, b.interactionUserID(i), movieID)
	b.editDeferred(s, i, b.msg.RequestSuccess(title, is4k))
}

// handleRequestCommand implements /request: availability is checked first so
// nobody requests a movie the server already has.
func (b *Bot) handleRequestCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.cfg.OverseerrConfigured() {
		b.replyEphemeral(s, i, b.msg.NotConfigured)
		return
	}

	link, err := b.db.GetAccountLink(b.interactionUserID(i))
	if err != nil {
		utils.ErrorLog("Account link lookup failed: %v", err)
		b.replyEphemeral(s, i, b.msg.GenericError)
		return
	}
	if link == nil {
		b.replyEphemeral(s, i, b.msg.NotLinked)
		return
	}

	details, err := b.resolveMovie(optString(i, "title"))
	if err != nil || details == nil {
		b.replyEphemeral(s, i, b.msg.MovieNotFound)
		return
	}

	status, err := b.osr.GetAvailability(details.ID)
	if err == nil {
		if status.Available {
			b.replyEphemeral(s, i, b.msg.AlreadyAvailable)
			return
		}
		if status.Requested || status.Processing {
			b.replyEphemeral(s, i, b.msg.AlreadyRequested)
			return
		}
	}

	b.openQualityModal(s, i, "quick_request_modal_"+strconv.Itoa(details.ID), details.Title)
}

// handleMyRequests summarizes the caller's Overseerr requests.
func (b *Bot) handleMyRequests(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.cfg.OverseerrConfigured() {
		b.replyEphemeral(s, i, b.msg.NotConfigured)
		return
	}

	link, err := b.db.GetAccountLink(b.interactionUserID(i))
	if err != nil {
		utils.ErrorLog("Account link lookup failed: %v", err)
		b.replyEphemeral(s, i, b.msg.GenericError)
		return
	}
	if link == nil {
		b.replyEphemeral(s, i, b.msg.NotLinked)
		return
	}

	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "cancel" {
			b.cancelUserRequest(s, i, link, int(opt.IntValue()))
			return
		}
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		utils.ErrorLog("Failed to defer /myrequests: %v", err)
		return
	}

	requests, err := b.osr.GetUserRequests(link.OverseerrUserID)
	if err != nil {
		utils.ErrorLog("Failed to fetch requests: %v", err)
		b.editDeferred(s, i, b.msg.GenericError)
		return
	}
	if len(requests) == 0 {
		b.editDeferred(s, i, b.msg.NoRequests)
		return
	}

	var pending, approved, available int
	for _, r := range requests {
		switch {
		case r.MediaStatus >= overseerr.MediaStatusPartial:
			available++
		case r.RequestStatus == 2:
			approved++
		default:
			pending++
		}
	}

	const shown = 10
	var lines []string
	for idx, r := range requests {
		if idx == shown {
			break
		}
		lines = append(lines, fmt.Sprintf("• %s (#%d)", b.describeRequest(r), r.ID))
	}
	summary := fmt.Sprintf("%s\n%s | %s | %s\n\n%s",
		b.msg.LinkedAs(link.OverseerrUsername),
		b.msg.PendingStatus(pending), b.msg.ApprovedStatus(approved), b.msg.AvailableStatus(available),
		strings.Join(lines, "\n"))
	if len(requests) > shown {
		summary += "\n" + b.msg.ShowingCount(shown, len(requests))
	}

	embed := &discordgo.MessageEmbed{Title: b.msg.MyRequestsTitle, Description: summary, Color: colorInfo}
	embeds := []*discordgo.MessageEmbed{embed}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds}); err != nil {
		utils.ErrorLog("Failed to edit /myrequests response: %v", err)
	}
}

// cancelUserRequest cancels one of the caller's own Overseerr requests. The
// ownership check matters: request IDs are global and easy to guess.
func (b *Bot) cancelUserRequest(s *discordgo.Session, i *discordgo.InteractionCreate, link *types.AccountLink, requestID int) {
	requests, err := b.osr.GetUserRequests(link.OverseerrUserID)
	if err != nil {
		utils.ErrorLog("Failed to fetch requests for cancel: %v", err)
		b.replyEphemeral(s, i, b.msg.GenericError)
		return
	}
	owned := false
	for _, r := range requests {
		if r.ID == requestID {
			owned = true
			break
		}
	}
	if !owned {
		b.replyEphemeral(s, i, b.msg.CancelFailed(fmt.Sprintf("no request #%d on your account", requestID)))
		return
	}

	if err := b.osr.CancelRequest(requestID); err != nil {
		utils.ErrorLog("Failed to cancel request %d: %v", requestID, err)
		b.replyEphemeral(s, i, b.msg.CancelFailed(err.Error()))
		return
	}
	utils.InfoLog("Request %d cancelled by %s", requestID, b.interactionUserID(i))
	b.replyEphemeral(s, i, b.msg.CancelSuccess)
}

func (b *Bot) describeRequest(r types.MediaRequest) string {
	name := fmt.Sprintf("TMDB %d", r.TMDBID)
	if details, err := b.tmdb.GetMovieDetails(r.TMDBID); err == nil {
		name = details.Title
	}
	if r.Is4K {
		name += " (4K)"
	}
	switch {
	case r.MediaStatus >= overseerr.MediaStatusPartial:
		return "📺 " + name
	case r.RequestStatus == 2:
		return "✅ " + name
	default:
		return "⏳ " + name
	}
}
