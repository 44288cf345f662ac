package seed

import (
	"time"

	"github.com/nkiryanov/pointseed/internal/idgen"
	"github.com/nkiryanov/pointseed/internal/models"
)

func (s *Service) GenerateUsers() []models.User {
	users := make([]models.User, 0, s.profile.Users)

	for i := 1; i <= s.profile.Users; i++ {
		u := models.User{
			ID:       idgen.Sequential("user_", s.profile.UserIDWidth, i),
			WechatID: s.ids.WechatID(),
			Nickname: s.sampler.Name(s.pools.Surnames, s.pools.GivenNames),
			Avatar:   s.sampler.Avatar(),
		}

		if s.sampler.Bool(s.profile.PhoneProbability) {
			phone := s.ids.Phone()
			u.Phone = &phone
		}

		u.CreatedAt = s.userCreatedAt()
		users = append(users, u)
	}

	return users
}

func (s *Service) userCreatedAt() time.Time {
	if c := s.profile.Calendar; c != nil {
		return s.sampler.InMonth(c.Month, 1, 28, 8, 22)
	}
	return s.sampler.Within(s.clock(), s.profile.UserWindowDays)
}
