package main

import (
	"github.com/smartpaperhq/smartpaper/core"
	"github.com/smartpaperhq/smartpaper/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(uname, email, name, role, pwd string) error {
	uname = core.CleanString(uname, true /* lower */)
	email = core.CleanString(email, true /* lower */)
	role = core.CleanString(role, true /* lower */)
	name = core.CleanString(name)
	if name == "" {
		name = uname
	}

	usr, err := cli.usrSvc.GetByUsernameOrEmail(uname)
	if err != nil {
		if err != user.ErrNotFound {
			return err
		}
		nu := user.NewUser{
			Username: uname,
			Email:    email,
			Role:     role,
			FullName: name,
			Password: pwd,
		}
		if err := nu.Validate(cli.usrSvc); err != nil {
			return err
		}
		_, err = cli.usrSvc.Create(nu)
		return err
	}

	active := true
	uu := user.UpdateUser{
		Email:    email,
		Role:     role,
		FullName: name,
		Password: pwd,
		IsActive: &active,
	}
	if err := uu.Validate(usr, cli.usrSvc); err != nil {
		return err
	}
	_, err = cli.usrSvc.Update(usr.ID, uu)
	return err
}
