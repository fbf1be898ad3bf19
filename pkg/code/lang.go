package code

import (
	"errors"
	"fmt"
	"reflect"
)

// lang type, used to store English and Chinese text
// lang 类型，用来存储英文和中文文本
type lang struct {
	en    string // English // 英文
	zh_cn string // Chinese // 中文
}

// Default language is English // 默认语言为英文
var lng = "en"

const FALLBACK_LNG = "en"

// GetMessage method returns the corresponding message according to the passed language
// GetMessage 方法根据传入的语言返回相应的消息
func (l lang) GetMessage() string {
	if lng == "" {
		lng = FALLBACK_LNG
	}
	val := reflect.ValueOf(l)
	field := val.FieldByName(lng)
	if field.IsValid() && field.String() != "" {
		return field.String()
	}
	fallbackField := val.FieldByName(FALLBACK_LNG)
	if fallbackField.IsValid() && fallbackField.String() != "" {
		return fallbackField.String()
	}
	return fmt.Sprintf("No message available for language: %s", lng)
}

// GetSupportedLanguages 返回 lang 类型支持的所有语言
func GetSupportedLanguages() []string {
	var languages []string
	typ := reflect.TypeOf(lang{})
	for i := 0; i < typ.NumField(); i++ {
		languages = append(languages, typ.Field(i).Name)
	}
	return languages
}

// SetGlobalDefaultLang sets the global default language
// SetGlobalDefaultLang 设置全局默认语言
func SetGlobalDefaultLang(language string) error {
	for _, l := range GetSupportedLanguages() {
		if language == l {
			lng = language
			return nil
		}
	}
	return errors.New("unsupported language: " + language)
}

var (
	// Success 成功
	Success = NewSuss(0, lang{en: "Success", zh_cn: "成功"})

	// Failed 通用失败
	Failed = NewError(1, lang{en: "Failed", zh_cn: "失败"})

	// ErrorServerInternal 服务内部错误
	ErrorServerInternal = NewError(10000, lang{en: "Server internal error", zh_cn: "服务内部错误"})
	// ErrorInvalidParams 入参错误
	ErrorInvalidParams = NewError(10001, lang{en: "Invalid params", zh_cn: "入参错误"})
	// ErrorNotFoundAPI 接口不存在
	ErrorNotFoundAPI = NewError(10002, lang{en: "Api not found", zh_cn: "接口不存在"})
	// ErrorTooManyRequests 请求过多
	ErrorTooManyRequests = NewError(10003, lang{en: "Too many requests", zh_cn: "请求过多"})
	// ErrorDBQuery 数据库查询错误
	ErrorDBQuery = NewError(10004, lang{en: "Database query error", zh_cn: "数据库查询错误"})
	// ErrorTokenGenerate Token 生成失败
	ErrorTokenGenerate = NewError(10005, lang{en: "Token generate failed", zh_cn: "Token 生成失败"})

	// ErrorNotUserAuthToken 缺少认证 Token
	ErrorNotUserAuthToken = NewError(20001, lang{en: "Auth token required", zh_cn: "缺少认证 Token"})
	// ErrorInvalidUserAuthToken 认证 Token 无效
	ErrorInvalidUserAuthToken = NewError(20002, lang{en: "Invalid auth token", zh_cn: "认证 Token 无效"})
	// ErrorUserRegisterIsDisable 注册已关闭
	ErrorUserRegisterIsDisable = NewError(20003, lang{en: "Registration is disabled", zh_cn: "注册已关闭"})
	// ErrorUserAlreadyExists 用户名已存在
	ErrorUserAlreadyExists = NewError(20004, lang{en: "Username already exists", zh_cn: "用户名已存在"})
	// ErrorUserLoginFailed 用户名或密码错误
	ErrorUserLoginFailed = NewError(20005, lang{en: "Incorrect username or password", zh_cn: "用户名或密码错误"})
	// ErrorUserNotFound 用户不存在
	ErrorUserNotFound = NewError(20006, lang{en: "User not found", zh_cn: "用户不存在"})
	// ErrorUserRegister 注册失败
	ErrorUserRegister = NewError(20007, lang{en: "Register failed", zh_cn: "注册失败"})
	// ErrorPasswordNotValid 密码无效
	ErrorPasswordNotValid = NewError(20008, lang{en: "Invalid password", zh_cn: "密码无效"})

	// ErrorNoteNotFound 笔记不存在（含非本人笔记，二者不可区分）
	ErrorNoteNotFound = NewError(30001, lang{en: "Note not found", zh_cn: "笔记不存在"})
	// ErrorNoteCreate 笔记创建失败
	ErrorNoteCreate = NewError(30002, lang{en: "Note create failed", zh_cn: "笔记创建失败"})
	// ErrorNoteUpdate 笔记更新失败
	ErrorNoteUpdate = NewError(30003, lang{en: "Note update failed", zh_cn: "笔记更新失败"})
	// ErrorNoteDelete 笔记删除失败
	ErrorNoteDelete = NewError(30004, lang{en: "Note delete failed", zh_cn: "笔记删除失败"})
	// ErrorNoteImport 笔记导入失败
	ErrorNoteImport = NewError(30005, lang{en: "Note import failed", zh_cn: "笔记导入失败"})
	// ErrorNoteExport 笔记导出失败
	ErrorNoteExport = NewError(30006, lang{en: "Note export failed", zh_cn: "笔记导出失败"})

	// ErrorShareNotFound 分享链接不存在（含已撤销与已过期，对外不可区分）
	ErrorShareNotFound = NewError(40001, lang{en: "Share link not found", zh_cn: "分享链接不存在"})
	// ErrorShareCreate 分享创建失败
	ErrorShareCreate = NewError(40002, lang{en: "Share create failed", zh_cn: "分享创建失败"})
	// ErrorForbidden 无权操作
	ErrorForbidden = NewError(40003, lang{en: "Permission denied", zh_cn: "无权操作"})
	// ErrorShareRevoke 分享撤销失败
	ErrorShareRevoke = NewError(40004, lang{en: "Share revoke failed", zh_cn: "分享撤销失败"})
)
