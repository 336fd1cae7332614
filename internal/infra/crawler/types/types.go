package types

// NetworkResponse 静态抓取得到的一次HTTP响应
type NetworkResponse struct {
	Url        string
	StatusCode int
	Body       []byte
}
