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
	"math"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/lucasduport/movie-night/pkg/utils"
)

// handleBully manages the press-tracker target. Admin only.
func (b *Bot) handleBully(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.isAdmin(i) {
		b.replyEphemeral(s, i, b.msg.BullyNoPermission)
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	switch sub.Name {
	case "set":
		userID := subOptUserID(sub.Options, "user")
		if userID == "" {
			b.replyEphemeral(s, i, b.msg.GenericError)
			return
		}
		b.tracker.SetTarget(userID)
		b.replyEphemeral(s, i, b.msg.BullyEnabled("<@"+userID+">", userID))

	case "remove":
		if b.tracker.Target() == "" {
			b.replyEphemeral(s, i, b.msg.BullyNoTarget)
			return
		}
		b.tracker.SetTarget("")
		b.replyEphemeral(s, i, b.msg.BullyDisabled)

	case "status":
		target := b.tracker.Target()
		if target == "" {
			b.replyEphemeral(s, i, b.msg.BullyStatusNone)
			return
		}
		reply := b.msg.BullyStatusActive(target)
		if strikes, remaining := b.tracker.StatusForTarget(); remaining > 0 {
			reply += "\n" + b.msg.BullyCooldownStatus(target, ceilMinutes(remaining))
		} else if strikes > 0 {
			reply += fmt.Sprintf(" (%d/2)", strikes)
		}
		b.replyEmbedEphemeral(s, i, colorWarn, b.msg.BullyStatusTitle, reply)

	case "cd":
		target := b.tracker.Target()
		if target == "" {
			b.replyEphemeral(s, i, b.msg.BullyNoTarget)
			return
		}
		remaining := b.tracker.RemainingCooldown(target)
		if remaining == 0 {
			b.replyEphemeral(s, i, b.msg.BullyNoCooldown)
			return
		}
		b.replyEphemeral(s, i, b.msg.BullyCooldownStatus(target, ceilMinutes(remaining)))

	case "cdreset":
		target := b.tracker.Target()
		if target == "" {
			b.replyEphemeral(s, i, b.msg.BullyNoTarget)
			return
		}
		if b.tracker.ResetTarget() {
			b.replyEphemeral(s, i, b.msg.BullyCooldownReset(target))
		} else {
			b.replyEphemeral(s, i, b.msg.BullyNothingToReset(target))
		}
	}
}

func ceilMinutes(d time.Duration) int {
	return int(math.Ceil(d.Minutes()))
}

// handleOverseerr manages Discord-to-Overseerr account links. Admin only.
func (b *Bot) handleOverseerr(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.isAdmin(i) {
		b.replyEphemeral(s, i, b.msg.BullyNoPermission)
		return
	}
	if !b.cfg.OverseerrConfigured() {
		b.replyEphemeral(s, i, b.msg.NotConfigured)
		return
	}

	sub := i.ApplicationCommandData().Options[0]
	switch sub.Name {
	case "link":
		b.handleOverseerrLink(s, i, sub.Options)
	case "unlink":
		b.handleOverseerrUnlink(s, i, sub.Options)
	case "status":
		version, err := b.osr.Status()
		if err != nil {
			b.replyEmbedEphemeral(s, i, colorError, b.msg.OverseerrTitle, b.msg.ConnectionFailed(err.Error()))
			return
		}
		b.replyEmbedEphemeral(s, i, colorSuccess, b.msg.OverseerrTitle, b.msg.ConnectionSuccess(version))
	case "list":
		b.handleOverseerrList(s, i)
	}
}

func (b *Bot) handleOverseerrLink(s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	discordID := subOptUserID(opts, "user")
	identifier := subOptString(opts, "identifier")
	tag := "<@" + discordID + ">"

	existing, err := b.db.GetAccountLink(discordID)
	if err != nil {
		utils.ErrorLog("Link lookup failed: %v", err)
		b.replyEphemeral(s, i, b.msg.LinkFailed)
		return
	}
	if existing != nil {
		b.replyEphemeral(s, i, b.msg.AlreadyLinked(tag, existing.OverseerrUsername))
		return
	}

	user, err := b.osr.FindUser(identifier)
	if err != nil {
		utils.ErrorLog("Overseerr user lookup failed: %v", err)
		b.replyEphemeral(s, i, b.msg.ConnectionFailed(err.Error()))
		return
	}
	if user == nil {
		b.replyEphemeral(s, i, b.msg.OverseerrUserNotFound(identifier))
		return
	}

	name := user.Username
	if name == "" {
		name = user.PlexUsername
	}
	if err := b.db.LinkAccount(discordID, user.ID, name, user.PlexUsername, b.interactionUserID(i)); err != nil {
		utils.ErrorLog("Failed to store account link: %v", err)
		b.replyEphemeral(s, i, b.msg.LinkFailed)
		return
	}
	b.replyEphemeral(s, i, b.msg.LinkSuccess(tag, name))
}

func (b *Bot) handleOverseerrUnlink(s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) {
	discordID := subOptUserID(opts, "user")
	tag := "<@" + discordID + ">"

	changed, err := b.db.UnlinkAccount(discordID)
	if err != nil {
		utils.ErrorLog("Failed to unlink account: %v", err)
		b.replyEphemeral(s, i, b.msg.UnlinkFailed)
		return
	}
	if !changed {
		b.replyEphemeral(s, i, b.msg.NotLinkedUser(tag))
		return
	}
	b.replyEphemeral(s, i, b.msg.UnlinkSuccess(tag))
}

func (b *Bot) handleOverseerrList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	links, err := b.db.ListAccountLinks()
	if err != nil {
		utils.ErrorLog("Failed to list account links: %v", err)
		b.replyEphemeral(s, i, b.msg.GenericError)
		return
	}
	if len(links) == 0 {
		b.replyEphemeral(s, i, b.msg.NoLinks)
		return
	}

	lines := []string{b.msg.LinkedAccounts(len(links))}
	for _, l := range links {
		lines = append(lines, fmt.Sprintf("• <@%s> → **%s**", l.DiscordUserID, l.OverseerrUsername))
	}
	b.replyEphemeral(s, i, strings.Join(lines, "\n"))
}
