package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/handler"
	"github.com/blueswitch/blueswitch/internal/handler/mocks"
	"github.com/blueswitch/blueswitch/internal/service"
)

func TestTeamHandler_CreateTeam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		requestBody      interface{}
		caller           string
		mockSetup        func(*mocks.MockTeamServiceInterface)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "success - creator becomes admin",
			requestBody: map[string]string{"team_name": "Casa", "email": "ana@example.com"},
			caller:      "ana@example.com",
			mockSetup: func(m *mocks.MockTeamServiceInterface) {
				m.EXPECT().CreateTeam(mock.Anything, "Casa", "ana@example.com").Return(&domain.Team{
					Name:    "Casa",
					Code:    "K7Q2MZ",
					Role:    domain.RoleAdmin,
					Members: []domain.TeamMember{{Email: "ana@example.com", Role: domain.RoleAdmin}},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response handler.TeamResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				require.NotNil(t, response.Team)
				assert.Equal(t, "K7Q2MZ", response.Team.Code)
				assert.Equal(t, domain.RoleAdmin, response.Team.Role)
			},
		},
		{
			name:           "error - blank team name",
			requestBody:    map[string]string{"team_name": "   ", "email": "ana@example.com"},
			mockSetup:      func(m *mocks.MockTeamServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, "team_name is required", decodeError(t, w).Error.Message)
			},
		},
		{
			name:           "error - missing email",
			requestBody:    map[string]string{"team_name": "Casa"},
			mockSetup:      func(m *mocks.MockTeamServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, handler.ErrorInvalidArgument, decodeError(t, w).Error.Code)
			},
		},
		{
			name:        "error - codes exhausted",
			requestBody: map[string]string{"team_name": "Casa", "email": "ana@example.com"},
			mockSetup: func(m *mocks.MockTeamServiceInterface) {
				m.EXPECT().CreateTeam(mock.Anything, "Casa", "ana@example.com").Return(nil, service.ErrCodeExhausted)
			},
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, handler.ErrorTeamExists, decodeError(t, w).Error.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockTeamServiceInterface(t)
			tt.mockSetup(mockService)

			h := handler.NewTeamHandler(mockService)
			w := serve(t, h.CreateTeam, "/api/Teams/create_team", tt.requestBody, tt.caller)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateResponse(t, w)
		})
	}
}

func TestTeamHandler_JoinTeam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := map[string]string{"email": "bob@example.com", "team_name": "Casa", "team_code": " K7Q2MZ "}

	tests := []struct {
		name           string
		mockSetup      func(*mocks.MockTeamServiceInterface)
		expectedStatus int
		expectedCode   handler.ErrorCode
	}{
		{
			name: "success",
			mockSetup: func(m *mocks.MockTeamServiceInterface) {
				m.EXPECT().JoinTeam(mock.Anything, "bob@example.com", "Casa", "K7Q2MZ").Return(&domain.Team{
					Name: "Casa",
					Code: "K7Q2MZ",
					Role: domain.RoleMember,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "error - already member",
			mockSetup: func(m *mocks.MockTeamServiceInterface) {
				m.EXPECT().JoinTeam(mock.Anything, "bob@example.com", "Casa", "K7Q2MZ").Return(nil, service.ErrAlreadyMember)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   handler.ErrorAlreadyMember,
		},
		{
			name: "error - name does not match code",
			mockSetup: func(m *mocks.MockTeamServiceInterface) {
				m.EXPECT().JoinTeam(mock.Anything, "bob@example.com", "Casa", "K7Q2MZ").Return(nil, service.ErrTeamNameMismatch)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   handler.ErrorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockTeamServiceInterface(t)
			tt.mockSetup(mockService)

			h := handler.NewTeamHandler(mockService)
			w := serve(t, h.JoinTeam, "/api/Teams/join_team", body, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error.Code)
			}
		})
	}
}

func TestTeamHandler_ReadTeamsAndMembers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("read_teams wraps teams", func(t *testing.T) {
		mockService := mocks.NewMockTeamServiceInterface(t)
		mockService.EXPECT().ReadTeams(mock.Anything, "ana@example.com").Return([]domain.Team{
			{Name: "Casa", Code: "K7Q2MZ", Role: domain.RoleAdmin},
		}, nil)

		h := handler.NewTeamHandler(mockService)
		w := serve(t, h.ReadTeams, "/api/Teams/read_teams", map[string]string{"email": "ana@example.com"}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		var response handler.TeamsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Teams, 1)
		assert.Equal(t, "Casa", response.Teams[0].Name)
	})

	t.Run("read_teams with no teams returns empty list", func(t *testing.T) {
		mockService := mocks.NewMockTeamServiceInterface(t)
		mockService.EXPECT().ReadTeams(mock.Anything, "new@example.com").Return(nil, nil)

		h := handler.NewTeamHandler(mockService)
		w := serve(t, h.ReadTeams, "/api/Teams/read_teams", map[string]string{"email": "new@example.com"}, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"teams":[]}`, w.Body.String())
	})

	t.Run("get_members keeps service order", func(t *testing.T) {
		mockService := mocks.NewMockTeamServiceInterface(t)
		mockService.EXPECT().GetMembers(mock.Anything, "ana@example.com", "K7Q2MZ").Return([]domain.TeamMember{
			{Email: "ana@example.com", Role: domain.RoleAdmin},
			{Email: "bob@example.com", Role: domain.RoleMember},
		}, nil)

		h := handler.NewTeamHandler(mockService)
		w := serve(t, h.GetMembers, "/get_members", map[string]string{"team_code": "K7Q2MZ"}, "ana@example.com")

		assert.Equal(t, http.StatusOK, w.Code)
		var response handler.MembersResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Members, 2)
		assert.Equal(t, domain.RoleAdmin, response.Members[0].Role)
	})

	t.Run("get_members unknown team", func(t *testing.T) {
		mockService := mocks.NewMockTeamServiceInterface(t)
		mockService.EXPECT().GetMembers(mock.Anything, "", "NOPE22").Return(nil, service.ErrTeamNotFound)

		h := handler.NewTeamHandler(mockService)
		w := serve(t, h.GetMembers, "/get_members", map[string]string{"team_code": "NOPE22"}, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get_members outsider forbidden", func(t *testing.T) {
		mockService := mocks.NewMockTeamServiceInterface(t)
		mockService.EXPECT().GetMembers(mock.Anything, "mallory@example.com", "K7Q2MZ").Return(nil, service.ErrForbidden)

		h := handler.NewTeamHandler(mockService)
		w := serve(t, h.GetMembers, "/get_members", map[string]string{"team_code": "K7Q2MZ"}, "mallory@example.com")

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, handler.ErrorForbidden, decodeError(t, w).Error.Code)
	})
}

func TestTeamHandler_UpdateMembers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    map[string]string
		caller         string
		mockSetup      func(*mocks.MockTeamServiceInterface)
		expectedStatus int
		expectedCode   handler.ErrorCode
	}{
		{
			name:        "success - promote",
			requestBody: map[string]string{"team_code": "K7Q2MZ", "email": "bob@example.com", "action": "promote"},
			caller:      "ana@example.com",
			mockSetup: func(m *mocks.MockTeamServiceInterface) {
				m.EXPECT().UpdateMember(mock.Anything, "ana@example.com", "K7Q2MZ", "bob@example.com", domain.ActionPromote).
					Return(&domain.TeamMember{Email: "bob@example.com", Role: domain.RoleAssistant}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success - action is case-insensitive",
			requestBody: map[string]string{"team_code": "K7Q2MZ", "email": "bob@example.com", "action": "Remove"},
			caller:      "ana@example.com",
			mockSetup: func(m *mocks.MockTeamServiceInterface) {
				m.EXPECT().UpdateMember(mock.Anything, "ana@example.com", "K7Q2MZ", "bob@example.com", domain.ActionRemove).
					Return(&domain.TeamMember{Email: "bob@example.com", Role: domain.RoleMember}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - no caller",
			requestBody:    map[string]string{"team_code": "K7Q2MZ", "email": "bob@example.com", "action": "promote"},
			mockSetup:      func(m *mocks.MockTeamServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   handler.ErrorUnauthorized,
		},
		{
			name:           "error - unknown action",
			requestBody:    map[string]string{"team_code": "K7Q2MZ", "email": "bob@example.com", "action": "ban"},
			caller:         "ana@example.com",
			mockSetup:      func(m *mocks.MockTeamServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   handler.ErrorInvalidArgument,
		},
		{
			name:        "error - assistant may not promote",
			requestBody: map[string]string{"team_code": "K7Q2MZ", "email": "bob@example.com", "action": "promote"},
			caller:      "carl@example.com",
			mockSetup: func(m *mocks.MockTeamServiceInterface) {
				m.EXPECT().UpdateMember(mock.Anything, "carl@example.com", "K7Q2MZ", "bob@example.com", domain.ActionPromote).
					Return(nil, service.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   handler.ErrorForbidden,
		},
		{
			name:        "error - last admin",
			requestBody: map[string]string{"team_code": "K7Q2MZ", "email": "dan@example.com", "action": "demote"},
			caller:      "ana@example.com",
			mockSetup: func(m *mocks.MockTeamServiceInterface) {
				m.EXPECT().UpdateMember(mock.Anything, "ana@example.com", "K7Q2MZ", "dan@example.com", domain.ActionDemote).
					Return(nil, service.ErrLastAdmin)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   handler.ErrorLastAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockTeamServiceInterface(t)
			tt.mockSetup(mockService)

			h := handler.NewTeamHandler(mockService)
			w := serve(t, h.UpdateMembers, "/api/Teams/update_members", tt.requestBody, tt.caller)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Error.Code)
			}
		})
	}
}

func TestTeamHandler_DeleteTeam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		mockService := mocks.NewMockTeamServiceInterface(t)
		mockService.EXPECT().DeleteTeam(mock.Anything, "ana@example.com", "K7Q2MZ").Return(nil)

		h := handler.NewTeamHandler(mockService)
		w := serve(t, h.DeleteTeam, "/api/Teams/delete_team", map[string]string{"team_code": "K7Q2MZ"}, "ana@example.com")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"mensaje":"Equipo eliminado"}`, w.Body.String())
	})

	t.Run("not admin", func(t *testing.T) {
		mockService := mocks.NewMockTeamServiceInterface(t)
		mockService.EXPECT().DeleteTeam(mock.Anything, "bob@example.com", "K7Q2MZ").Return(service.ErrForbidden)

		h := handler.NewTeamHandler(mockService)
		w := serve(t, h.DeleteTeam, "/api/Teams/delete_team", map[string]string{"team_code": "K7Q2MZ"}, "bob@example.com")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing team code", func(t *testing.T) {
		mockService := mocks.NewMockTeamServiceInterface(t)

		h := handler.NewTeamHandler(mockService)
		w := serve(t, h.DeleteTeam, "/api/Teams/delete_team", map[string]string{}, "ana@example.com")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
