package commands

const (
	_etc = "/usr/local/etc/ask-a-tech"
	_var = "/usr/local/var/ask-a-tech"

	DEFAULT_CONFIG  = _etc + "/ask-a-tech.yaml"
	DEFAULT_WORKDIR = _var
)
