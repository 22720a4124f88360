package tools_test

import (
	"github.com/effective-security/transend-mcp/mocks/mocktransend"
	"go.uber.org/mock/gomock"
)

type apiMocks struct {
	api      *mocktransend.MockAPI
	branch   *mocktransend.MockBranchAPI
	product  *mocktransend.MockProductAPI
	account  *mocktransend.MockAccountAPI
	content  *mocktransend.MockContentAPI
	core     *mocktransend.MockCoreAPI
	customer *mocktransend.MockCustomerAPI
	vehicle  *mocktransend.MockVehicleAPI
}

func newAPIMocks(ctrl *gomock.Controller) *apiMocks {
	m := &apiMocks{
		api:      mocktransend.NewMockAPI(ctrl),
		branch:   mocktransend.NewMockBranchAPI(ctrl),
		product:  mocktransend.NewMockProductAPI(ctrl),
		account:  mocktransend.NewMockAccountAPI(ctrl),
		content:  mocktransend.NewMockContentAPI(ctrl),
		core:     mocktransend.NewMockCoreAPI(ctrl),
		customer: mocktransend.NewMockCustomerAPI(ctrl),
		vehicle:  mocktransend.NewMockVehicleAPI(ctrl),
	}
	m.api.EXPECT().Branch().Return(m.branch).AnyTimes()
	m.api.EXPECT().Product().Return(m.product).AnyTimes()
	m.api.EXPECT().Account().Return(m.account).AnyTimes()
	m.api.EXPECT().Content().Return(m.content).AnyTimes()
	m.api.EXPECT().Core().Return(m.core).AnyTimes()
	m.api.EXPECT().Customer().Return(m.customer).AnyTimes()
	m.api.EXPECT().Vehicle().Return(m.vehicle).AnyTimes()
	return m
}

func ptr[T any](v T) *T {
	return &v
}
