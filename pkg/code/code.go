package code

import (
	"fmt"
	"net/http"
)

// Code unified business status code, carries message language and optional payload
// Code 统一业务状态码，携带多语言消息与可选负载
type Code struct {
	// 状态码
	code int
	// 成功与否
	status bool
	// 多语言消息
	Lang lang
	// 数据
	data     interface{}
	haveData bool
	// 错误详细信息
	details     []string
	haveDetails bool
}

var codes = map[int]string{}

// NewError registers a failure code, duplicate codes panic at init time
// NewError 注册失败状态码，重复注册在初始化阶段直接 panic
func NewError(code int, l lang) *Code {
	if _, ok := codes[code]; ok {
		panic(fmt.Sprintf("错误码 %d 已经存在，请更换一个", code))
	}
	codes[code] = l.GetMessage()
	return &Code{code: code, status: false, Lang: l}
}

var sussCodes = map[int]string{}

// NewSuss registers a success code
// NewSuss 注册成功状态码
func NewSuss(code int, l lang) *Code {
	if _, ok := sussCodes[code]; ok {
		panic(fmt.Sprintf("成功码 %d 已经存在，请更换一个", code))
	}
	sussCodes[code] = l.GetMessage()
	return &Code{code: code, status: true, Lang: l}
}

// Clone 创建一个新的 Code 副本
func (e *Code) Clone() *Code {
	return &Code{
		code:   e.code,
		status: e.status,
		Lang:   e.Lang,
	}
}

// Error 实现 error 接口
func (e *Code) Error() string {
	return fmt.Sprintf("code %d: %s", e.code, e.Lang.GetMessage())
}

// Code 返回业务状态码
func (e *Code) Code() int {
	return e.code
}

// Status 返回成功与否
func (e *Code) Status() bool {
	return e.status
}

// Msg 返回当前语言的消息
func (e *Code) Msg() string {
	return e.Lang.GetMessage()
}

// Data 返回附加数据
func (e *Code) Data() interface{} {
	if !e.haveData {
		return nil
	}
	return e.data
}

// Details 返回错误详情
func (e *Code) Details() []string {
	if !e.haveDetails {
		return nil
	}
	return e.details
}

// HaveDetails 是否携带详情
func (e *Code) HaveDetails() bool {
	return e.haveDetails
}

// WithData clones the code and attaches response data
// WithData 克隆状态码并附加响应数据
func (e *Code) WithData(data interface{}) *Code {
	c := e.Clone()
	c.data = data
	c.haveData = true
	return c
}

// WithDetails clones the code and attaches detail messages
// WithDetails 克隆状态码并附加详情信息
func (e *Code) WithDetails(details ...string) *Code {
	c := e.Clone()
	c.details = append(c.details, details...)
	c.haveDetails = true
	return c
}

// Is supports errors.Is comparison by business code
// Is 支持按业务码进行 errors.Is 比较
func (e *Code) Is(target error) bool {
	t, ok := target.(*Code)
	if !ok {
		return false
	}
	return e.code == t.code
}

// StatusCode maps the business code to an HTTP status code
// StatusCode 将业务状态码映射为 HTTP 状态码
func (e *Code) StatusCode() int {
	switch e.code {
	case Success.Code():
		return http.StatusOK
	case ErrorServerInternal.Code():
		return http.StatusInternalServerError
	case ErrorInvalidParams.Code():
		return http.StatusBadRequest
	case ErrorNotUserAuthToken.Code(), ErrorInvalidUserAuthToken.Code(), ErrorUserLoginFailed.Code():
		return http.StatusUnauthorized
	case ErrorForbidden.Code():
		return http.StatusForbidden
	case ErrorNotFoundAPI.Code(), ErrorNoteNotFound.Code(), ErrorShareNotFound.Code(), ErrorUserNotFound.Code():
		return http.StatusNotFound
	case ErrorUserAlreadyExists.Code():
		return http.StatusConflict
	case ErrorTooManyRequests.Code():
		return http.StatusTooManyRequests
	}
	if e.status {
		return http.StatusOK
	}
	return http.StatusBadRequest
}
