// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package config

// Getenv exposes the environment lookup hook to tests.
var Getenv = &getenv
