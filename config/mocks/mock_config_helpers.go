package mocks

import gomock "github.com/golang/mock/gomock"

// GetMockedConfig returns a config with the settings a provider reads.
func GetMockedConfig(ctrl *gomock.Controller) *MockConfig {
	config := NewMockConfig(ctrl)
	config.EXPECT().GetString("url").Return("https://www.scenetime.com").AnyTimes()
	config.EXPECT().GetString("username").Return("user").AnyTimes()
	config.EXPECT().GetString("password").Return("pass").AnyTimes()
	config.EXPECT().GetFloat64("ratio").Return(1.5).AnyTimes()
	config.EXPECT().GetInt("minseed").Return(1).AnyTimes()
	config.EXPECT().GetInt("minleech").Return(0).AnyTimes()
	config.EXPECT().GetInt("timeout").Return(30).AnyTimes()
	config.EXPECT().GetFloat64("rate_limit").Return(0.0).AnyTimes()
	config.EXPECT().GetString("dump_dir").Return("").AnyTimes()
	config.EXPECT().GetBool("verbose").Return(true).AnyTimes()
	return config
}
