/*
Package tiltifyclient creates ready-to-use Tiltify v5 API clients.

	client, err := tiltifyclient.NewWithClientCredentials(ctx, clientID, clientSecret)

Configuration can also come from a YAML file and TILTIFY_* environment
variables:

	config, err := tiltifyclient.LoadConfig("")
	if err != nil {
		return err
	}

	client, err := tiltifyclient.New(ctx, config)
*/
package tiltifyclient
