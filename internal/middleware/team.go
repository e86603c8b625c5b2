package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kztJames01/makerSpace/internal/apperrors"
)

// MembershipChecker answers whether a user belongs to a team.
type MembershipChecker interface {
	IsMember(teamID, userID uint) bool
}

// RequireTeamMember gates team-scoped routes on membership. Platform admins
// bypass the check. The parsed team id is stashed in context for handlers.
func RequireTeamMember(ms MembershipChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("teamId"), 10, 64)
		if err != nil || id == 0 {
			abortWith(c, apperrors.Validation(40005, "invalid team id"))
			return
		}
		teamID := uint(id)

		if !IsCurrentUserAdmin(c) && !ms.IsMember(teamID, GetCurrentUserID(c)) {
			abortWith(c, apperrors.ErrNotTeamMember)
			return
		}

		c.Set("teamID", teamID)
		c.Next()
	}
}

// GetTeamID returns the team id resolved by RequireTeamMember.
func GetTeamID(c *gin.Context) uint {
	id, _ := c.Get("teamID")
	return id.(uint)
}
